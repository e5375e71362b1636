package entity

import (
	"context"

	"golang.org/x/exp/slog"

	"benchkit/internal/domain/record"
)

// Entity is the minimal identity record: the authenticated user or any
// generic named object the API hands back.
type Entity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var schema = record.Schema{
	{Name: "id"},
	{Name: "name"},
}

func (e *Entity) RecordID() string            { return e.ID }
func (e *Entity) RecordSchema() record.Schema { return schema }

// Service exposes entity lookups.
type Service struct {
	*record.Collection[*Entity]
}

func NewService(tx record.Transport, store *record.Store[*Entity], log *slog.Logger) *Service {
	return &Service{
		Collection: record.NewCollection(tx, "entities", store, func() *Entity { return &Entity{} }, log),
	}
}

// Me returns the entity owning the API key.
func (s *Service) Me(ctx context.Context) (*Entity, error) {
	return s.Find(ctx, "me")
}
