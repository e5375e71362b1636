package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/exp/slog"

	"benchkit/internal/domain/record"
)

// Status allow-lists per method. Anything outside the list becomes a
// RemoteError; nothing is retried.
var (
	getStatuses    = []int{http.StatusOK}
	postStatuses   = []int{http.StatusOK, http.StatusCreated, http.StatusAccepted}
	patchStatuses  = []int{http.StatusOK, http.StatusCreated}
	deleteStatuses = []int{http.StatusOK}
)

// Transport performs authenticated HTTP calls against the API base URL.
// Authentication is HTTP basic with the API key as the username and an
// empty password. Calls block until the response arrives; no timeout is
// configured beyond the underlying client's own.
type Transport struct {
	home   *url.URL
	apiKey string
	client *http.Client
	log    *slog.Logger
}

func NewTransport(baseURL, apiKey string, log *slog.Logger) (*Transport, error) {
	home, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	return &Transport{
		home:   home,
		apiKey: apiKey,
		client: cleanhttp.DefaultPooledClient(),
		log:    log,
	}, nil
}

func (t *Transport) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return t.do(ctx, http.MethodGet, path, query, nil, getStatuses)
}

func (t *Transport) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return t.do(ctx, http.MethodPost, path, nil, body, postStatuses)
}

func (t *Transport) Patch(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return t.do(ctx, http.MethodPatch, path, nil, body, patchStatuses)
}

func (t *Transport) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return t.do(ctx, http.MethodDelete, path, nil, nil, deleteStatuses)
}

// buildRequest resolves path against the base URL and attaches
// credentials and the JSON body.
func (t *Transport) buildRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	target := t.home.JoinPath(path)
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(t.apiKey, "")
	return req, nil
}

// checkResponse enforces the allow-list once per call.
func checkResponse(status int, allowed []int) error {
	for _, code := range allowed {
		if status == code {
			return nil
		}
	}
	return record.NewRemoteError(status)
}

func (t *Transport) do(ctx context.Context, method, path string, query url.Values, body any, allowed []int) (json.RawMessage, error) {
	req, err := t.buildRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}

	t.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	t.log.Debug("received response", "method", method, "url", req.URL.String(), "status", resp.StatusCode)

	if err := checkResponse(resp.StatusCode, allowed); err != nil {
		return nil, err
	}
	return data, nil
}
