package search

import (
	"context"
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/exp/slog"

	"benchkit/internal/domain/record"
)

// Query is a server-side search request.
type Query struct {
	Text   string `json:"query"`
	Type   string `json:"queryType"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

// NewQuery builds a text query with the server defaults.
func NewQuery(text string) Query {
	return Query{Text: text, Type: "text", Limit: 10}
}

func (q Query) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Text, validation.Required),
		validation.Field(&q.Type, validation.Required),
		validation.Field(&q.Limit, validation.Required, validation.Min(1)),
		validation.Field(&q.Offset, validation.Min(0)),
	)
}

// Service runs server-side searches.
type Service struct {
	tx  record.Transport
	log *slog.Logger
}

func NewService(tx record.Transport, log *slog.Logger) *Service {
	return &Service{tx: tx, log: log}
}

// Search posts the query and returns the raw result page.
func (s *Service) Search(ctx context.Context, q Query) (json.RawMessage, error) {
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("search: %w: %w", record.ErrValidation, err)
	}
	return s.tx.Post(ctx, "search", q)
}
