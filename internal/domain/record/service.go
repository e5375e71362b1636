package record

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"path"

	"golang.org/x/exp/slog"
)

// Collection is the type-level service for one record type: list, fetch,
// cache queries and the write operations, all against a single
// collection endpoint ("folders", "sequences", ...).
type Collection[T Model] struct {
	tx       Transport
	name     string
	envelope string
	store    *Store[T]
	factory  func() T
	log      *slog.Logger
}

func NewCollection[T Model](tx Transport, name string, store *Store[T], factory func() T, log *slog.Logger) *Collection[T] {
	return &Collection[T]{
		tx:       tx,
		name:     name,
		envelope: name,
		store:    store,
		factory:  factory,
		log:      log,
	}
}

// Name returns the collection endpoint path.
func (c *Collection[T]) Name() string {
	return c.name
}

// Store exposes the session cache backing this collection.
func (c *Collection[T]) Store() *Store[T] {
	return c.store
}

// All lists the collection, replaces the cache with the result and
// returns the records in server order.
func (c *Collection[T]) All(ctx context.Context, query url.Values) ([]T, error) {
	batch, err := c.FetchAll(ctx, query)
	if err != nil {
		return nil, err
	}
	c.store.Replace(batch)
	return batch, nil
}

// FetchAll lists the collection without touching the cache.
func (c *Collection[T]) FetchAll(ctx context.Context, query url.Values) ([]T, error) {
	raw, err := c.FetchAllRaw(ctx, query)
	if err != nil {
		return nil, err
	}
	return c.DecodeList(raw)
}

// FetchAllRaw lists the collection and returns the undecoded body.
func (c *Collection[T]) FetchAllRaw(ctx context.Context, query url.Values) (json.RawMessage, error) {
	return c.tx.Get(ctx, c.name, query)
}

// DecodeList decodes a list response body ({"<collection>": [...]})
// into records.
func (c *Collection[T]) DecodeList(raw json.RawMessage) ([]T, error) {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode %s list: %w", c.name, err)
	}

	var items []map[string]any
	if body, ok := env[c.envelope]; ok {
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, fmt.Errorf("decode %s list: %w", c.name, err)
		}
	}

	batch := make([]T, 0, len(items))
	for _, item := range items {
		rec := c.factory()
		if err := Decode(item, rec); err != nil {
			return nil, fmt.Errorf("decode %s list: %w", c.name, err)
		}
		batch = append(batch, rec)
	}
	return batch, nil
}

// Find fetches a single record by id. It always hits the server and
// leaves the cache alone.
func (c *Collection[T]) Find(ctx context.Context, id string) (T, error) {
	var zero T
	raw, err := c.fetchRaw(ctx, id)
	if err != nil {
		return zero, err
	}
	rec := c.factory()
	if err := Decode(raw, rec); err != nil {
		return zero, err
	}
	return rec, nil
}

// Where scans the cache only; see Store.Where for the freshness
// contract.
func (c *Collection[T]) Where(fields map[string]any) []T {
	return c.store.Where(fields)
}

// FindBy resolves a record through the cache by a single field value and
// then re-fetches it by id. Zero matches is ErrNotFound. More than one
// match logs a warning and takes the first, mirroring the lenient lookup
// the API consumers rely on.
func (c *Collection[T]) FindBy(ctx context.Context, field string, value any) (T, error) {
	var zero T
	matches := c.store.Where(map[string]any{field: value})
	if len(matches) == 0 {
		return zero, fmt.Errorf("no %s with %s %q: %w", c.name, field, fmt.Sprint(value), ErrNotFound)
	}
	if len(matches) > 1 {
		c.log.Warn("ambiguous lookup, returning first match",
			"collection", c.name,
			"field", field,
			"value", value,
			"matches", len(matches),
		)
	}
	return c.Find(ctx, matches[0].RecordID())
}

// Create posts a new record payload to the collection endpoint.
func (c *Collection[T]) Create(ctx context.Context, body any) (json.RawMessage, error) {
	return c.tx.Post(ctx, c.name, body)
}

// PatchID updates a record by id.
func (c *Collection[T]) PatchID(ctx context.Context, id string, body any) (json.RawMessage, error) {
	return c.tx.Patch(ctx, path.Join(c.name, id), body)
}

// DeleteID deletes a record by id.
func (c *Collection[T]) DeleteID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.tx.Delete(ctx, path.Join(c.name, id))
}

// Update re-fetches rec by its own id and merges the returned fields
// into the live instance. Object identity is preserved; attributes the
// server returned are overwritten.
func (c *Collection[T]) Update(ctx context.Context, rec T) error {
	raw, err := c.fetchRaw(ctx, rec.RecordID())
	if err != nil {
		return err
	}
	return Merge(raw, rec)
}

// Push serializes rec (optionally restricted to a field subset), sends
// the patch, then reconciles the instance with server state.
func (c *Collection[T]) Push(ctx context.Context, rec T, only ...string) error {
	payload, err := Serialize(rec, only...)
	if err != nil {
		return err
	}
	if _, err := c.PatchID(ctx, rec.RecordID(), payload); err != nil {
		return err
	}
	return c.Update(ctx, rec)
}

// Remove deletes rec on the server.
func (c *Collection[T]) Remove(ctx context.Context, rec T) error {
	_, err := c.DeleteID(ctx, rec.RecordID())
	return err
}

func (c *Collection[T]) fetchRaw(ctx context.Context, id string) (map[string]any, error) {
	body, err := c.tx.Get(ctx, path.Join(c.name, id), nil)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode %s %s: %w", c.name, id, err)
	}
	return raw, nil
}
