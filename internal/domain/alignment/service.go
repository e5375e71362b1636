package alignment

import (
	"context"
	"encoding/json"
	"fmt"
	"path"

	"golang.org/x/exp/slog"

	"benchkit/internal/domain/record"
)

// Service submits alignment jobs and polls their status. Alignments are
// fire-and-poll: the submit call answers with a task id, the task
// endpoint reports progress, and the alignment endpoint serves the
// result.
type Service struct {
	tx  record.Transport
	log *slog.Logger
}

func NewService(tx record.Transport, log *slog.Logger) *Service {
	return &Service{tx: tx, log: log}
}

type submission struct {
	Algorithm        string  `json:"algorithm"`
	AlgorithmOptions Options `json:"algorithmOptions"`
	Files            []File  `json:"files"`
}

// Submit starts an alignment of queries against the target sequence.
// files[0] is always the target, referenced by id.
func (s *Service) Submit(ctx context.Context, seqID string, queries []File, opts Options) (json.RawMessage, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("submit alignment: %w: %w", record.ErrValidation, err)
	}

	files := append([]File{FileFromSequence(seqID)}, queries...)
	body := submission{
		Algorithm:        opts.Algorithm(),
		AlgorithmOptions: opts,
		Files:            files,
	}

	s.log.Debug("submitting alignment", "algorithm", opts.Algorithm(), "target", seqID, "queries", len(queries))
	return s.tx.Post(ctx, "alignments", body)
}

// Task polls a job by task id.
func (s *Service) Task(ctx context.Context, id string) (json.RawMessage, error) {
	return s.tx.Get(ctx, path.Join("tasks", id), nil)
}

// Get fetches a finished alignment by id.
func (s *Service) Get(ctx context.Context, id string) (json.RawMessage, error) {
	return s.tx.Get(ctx, path.Join("alignments", id), nil)
}
