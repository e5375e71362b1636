package entity

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"benchkit/internal/domain/record"
)

type meTransport struct {
	path string
}

func (m *meTransport) Get(_ context.Context, path string, _ url.Values) (json.RawMessage, error) {
	m.path = path
	return json.RawMessage(`{"id": "ent_1", "name": "alice"}`), nil
}

func (m *meTransport) Post(context.Context, string, any) (json.RawMessage, error) {
	return nil, nil
}

func (m *meTransport) Patch(context.Context, string, any) (json.RawMessage, error) {
	return nil, nil
}

func (m *meTransport) Delete(context.Context, string) (json.RawMessage, error) {
	return nil, nil
}

func TestMe(t *testing.T) {
	tx := &meTransport{}
	svc := NewService(tx, record.NewStore[*Entity](), slog.New(slog.NewTextHandler(io.Discard, nil)))

	me, err := svc.Me(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "entities/me", tx.path)
	assert.Equal(t, "ent_1", me.ID)
	assert.Equal(t, "alice", me.Name)
}
