package sequence

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"path"

	"golang.org/x/exp/slog"

	"benchkit/internal/domain/record"
)

const collection = "sequences"

// Service exposes the sequence operations. It rides the generic record
// collection and layers on annotation normalization and the
// create-with-overwrite flow.
type Service struct {
	*record.Collection[*Sequence]
	tx  record.Transport
	log *slog.Logger
}

func NewService(tx record.Transport, store *record.Store[*Sequence], log *slog.Logger) *Service {
	return &Service{
		Collection: record.NewCollection(tx, collection, store, func() *Sequence { return &Sequence{} }, log),
		tx:         tx,
		log:        log,
	}
}

// Find fetches a sequence by id and normalizes its annotations.
func (s *Service) Find(ctx context.Context, id string) (*Sequence, error) {
	seq, err := s.Collection.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	seq.Normalize()
	return seq, nil
}

// FindBy resolves a sequence through the cache by a single field value
// and re-fetches it. The fetched copy is normalized like any other
// single-record fetch.
func (s *Service) FindBy(ctx context.Context, field string, value any) (*Sequence, error) {
	seq, err := s.Collection.FindBy(ctx, field, value)
	if err != nil {
		return nil, err
	}
	seq.Normalize()
	return seq, nil
}

// All is unsupported: the API serves no sequence listing endpoint. The
// sequence cache is populated by the folder refresh.
func (s *Service) All(context.Context, url.Values) ([]*Sequence, error) {
	return nil, fmt.Errorf("sequences cannot be listed directly, refresh folders instead")
}

// Create posts a new sequence and returns the full record fetched back
// from the server. With overwrite set, sequences of the same name in the
// target folder are deleted first, so the final folder listing holds
// exactly one sequence with that name.
func (s *Service) Create(ctx context.Context, opts CreateOptions, overwrite bool) (*Sequence, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("create sequence: %w: %w", record.ErrValidation, err)
	}

	previous := map[string]bool{}
	existing, err := s.folderSequences(ctx, opts.Folder)
	if err != nil {
		return nil, err
	}
	for _, entry := range existing {
		if overwrite && entry.Name == opts.Name {
			s.log.Info("overwrite on, deleting sequence", "id", entry.ID, "name", entry.Name)
			if _, err := s.DeleteID(ctx, entry.ID); err != nil {
				return nil, err
			}
			previous[entry.ID] = true
		}
	}

	if _, err := s.Collection.Create(ctx, opts); err != nil {
		return nil, err
	}

	// The POST response does not carry the new record; locate it through
	// the folder listing instead.
	created, err := s.folderSequences(ctx, opts.Folder)
	if err != nil {
		return nil, err
	}
	for _, entry := range created {
		if entry.Name == opts.Name && !previous[entry.ID] {
			return s.Find(ctx, entry.ID)
		}
	}

	return nil, fmt.Errorf("unable to locate sequence %q after creation, it may have been created nevertheless: %w",
		opts.Name, record.ErrValidation)
}

type folderEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// folderSequences lists the id/name pairs currently embedded in a
// folder, straight from the server.
func (s *Service) folderSequences(ctx context.Context, folderID string) ([]folderEntry, error) {
	body, err := s.tx.Get(ctx, path.Join("folders", folderID), url.Values{})
	if err != nil {
		return nil, err
	}
	var folder struct {
		Sequences []folderEntry `json:"sequences"`
	}
	if err := json.Unmarshal(body, &folder); err != nil {
		return nil, fmt.Errorf("decode folder %s: %w", folderID, err)
	}
	return folder.Sequences, nil
}
