package record

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// fakeTransport serves canned responses keyed by "METHOD path" and
// records every call in order.
type fakeTransport struct {
	responses map[string]json.RawMessage
	calls     []string
	bodies    map[string]any
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		responses: map[string]json.RawMessage{},
		bodies:    map[string]any{},
	}
}

func (f *fakeTransport) respond(key string, body string) {
	f.responses[key] = json.RawMessage(body)
}

func (f *fakeTransport) serve(key string, body any) (json.RawMessage, error) {
	f.calls = append(f.calls, key)
	if body != nil {
		f.bodies[key] = body
	}
	if resp, ok := f.responses[key]; ok {
		return resp, nil
	}
	return nil, NewRemoteError(404)
}

func (f *fakeTransport) Get(_ context.Context, path string, _ url.Values) (json.RawMessage, error) {
	return f.serve("GET "+path, nil)
}

func (f *fakeTransport) Post(_ context.Context, path string, body any) (json.RawMessage, error) {
	return f.serve("POST "+path, body)
}

func (f *fakeTransport) Patch(_ context.Context, path string, body any) (json.RawMessage, error) {
	return f.serve("PATCH "+path, body)
}

func (f *fakeTransport) Delete(_ context.Context, path string) (json.RawMessage, error) {
	return f.serve("DELETE "+path, nil)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSpecimenCollection(tx Transport) *Collection[*specimen] {
	return NewCollection(tx, "specimens", NewStore[*specimen](), func() *specimen { return &specimen{} }, testLogger())
}

func TestCollectionAll(t *testing.T) {
	tx := newFakeTransport()
	tx.respond("GET specimens", `{"specimens": [
		{"id": "a", "name": "pUC19", "junk": true},
		{"id": "b", "name": "pET28"}
	]}`)

	c := newSpecimenCollection(tx)
	ctx := context.Background()

	batch, err := c.All(ctx, url.Values{})
	require.NoError(t, err)
	require.Len(t, batch, 2)

	// Server order is preserved and the cache is swapped wholesale.
	assert.Equal(t, "a", batch[0].ID)
	assert.Equal(t, "b", batch[1].ID)
	assert.Equal(t, 2, c.Store().Len())

	tx.respond("GET specimens", `{"specimens": [{"id": "c", "name": "pGEX"}]}`)
	batch, err = c.All(ctx, url.Values{})
	require.NoError(t, err)
	require.Len(t, batch, 1)

	assert.Equal(t, 1, c.Store().Len())
	_, ok := c.Store().Get("a")
	assert.False(t, ok)
}

func TestCollectionFind(t *testing.T) {
	tx := newFakeTransport()
	tx.respond("GET specimens/a", `{"id": "a", "name": "pUC19"}`)

	c := newSpecimenCollection(tx)

	rec, err := c.Find(context.Background(), "a")
	require.NoError(t, err)

	assert.Equal(t, "pUC19", rec.Name)
	// Find always hits the server and leaves the cache alone.
	assert.Zero(t, c.Store().Len())
	assert.Equal(t, []string{"GET specimens/a"}, tx.calls)
}

func TestCollectionFindMissing(t *testing.T) {
	tx := newFakeTransport()
	c := newSpecimenCollection(tx)

	_, err := c.Find(context.Background(), "nope")
	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, 404, remote.StatusCode)
}

func TestCollectionFindBy(t *testing.T) {
	tx := newFakeTransport()
	tx.respond("GET specimens/a", `{"id": "a", "name": "pUC19"}`)

	c := newSpecimenCollection(tx)
	ctx := context.Background()

	t.Run("empty cache is not found", func(t *testing.T) {
		_, err := c.FindBy(ctx, "name", "pUC19")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	c.Store().Replace([]*specimen{
		{ID: "a", Name: "pUC19"},
		{ID: "b", Name: "pUC19"},
	})

	t.Run("ambiguous match returns the first", func(t *testing.T) {
		rec, err := c.FindBy(ctx, "name", "pUC19")
		require.NoError(t, err)
		assert.Equal(t, "a", rec.ID)
	})
}

func TestCollectionUpdate(t *testing.T) {
	tx := newFakeTransport()
	tx.respond("GET specimens/a", `{"id": "a", "name": "renamed", "count": 4}`)

	c := newSpecimenCollection(tx)
	rec := &specimen{ID: "a", Name: "stale", Secret: "keep"}

	require.NoError(t, c.Update(context.Background(), rec))

	assert.Equal(t, "renamed", rec.Name)
	assert.Equal(t, 4, rec.Count)
	assert.Equal(t, "keep", rec.Secret, "fields the server did not return survive")
}

func TestCollectionPush(t *testing.T) {
	tx := newFakeTransport()
	tx.respond("PATCH specimens/a", `{}`)
	tx.respond("GET specimens/a", `{"id": "a", "name": "server-name", "count": 2}`)

	c := newSpecimenCollection(tx)
	rec := &specimen{ID: "a", Name: "local-name", Count: 2}

	require.NoError(t, c.Push(context.Background(), rec, "name", "count"))

	// Patch first, then a reconciling re-fetch.
	assert.Equal(t, []string{"PATCH specimens/a", "GET specimens/a"}, tx.calls)
	assert.Equal(t, map[string]any{"name": "local-name", "count": float64(2)}, tx.bodies["PATCH specimens/a"])
	assert.Equal(t, "server-name", rec.Name)
}

func TestCollectionRemove(t *testing.T) {
	tx := newFakeTransport()
	tx.respond("DELETE specimens/a", `{}`)

	c := newSpecimenCollection(tx)

	require.NoError(t, c.Remove(context.Background(), &specimen{ID: "a"}))
	assert.Equal(t, []string{"DELETE specimens/a"}, tx.calls)
}

func TestCollectionDecodeListErrors(t *testing.T) {
	tx := newFakeTransport()
	tx.respond("GET specimens", `not json`)

	c := newSpecimenCollection(tx)

	_, err := c.All(context.Background(), nil)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}
