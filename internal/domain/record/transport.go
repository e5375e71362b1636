package record

import (
	"context"
	"encoding/json"
	"net/url"
)

// Transport performs authenticated calls against the API. Implementations
// resolve path against the configured base URL and enforce the per-method
// status allow-lists before returning the decoded body.
type Transport interface {
	Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
	Patch(ctx context.Context, path string, body any) (json.RawMessage, error)
	Delete(ctx context.Context, path string) (json.RawMessage, error)
}
