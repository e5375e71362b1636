package folder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"golang.org/x/exp/slog"

	"benchkit/internal/domain/record"
	"benchkit/internal/domain/sequence"
)

const collection = "folders"

// Service exposes the folder operations and owns the batch refresh: the
// folder listing is the one endpoint that returns the whole tree, so a
// refresh here also rebuilds the sequence cache and the name indexes.
type Service struct {
	*record.Collection[*Folder]
	seqs *record.Store[*sequence.Sequence]

	byName    map[string][]*Folder
	seqByName map[string][]*sequence.Sequence

	log *slog.Logger
}

func NewService(tx record.Transport, store *record.Store[*Folder], seqs *record.Store[*sequence.Sequence], log *slog.Logger) *Service {
	return &Service{
		Collection: record.NewCollection(tx, collection, store, func() *Folder { return &Folder{} }, log),
		seqs:       seqs,
		byName:     map[string][]*Folder{},
		seqByName:  map[string][]*sequence.Sequence{},
		log:        log,
	}
}

// All lists every folder, resolves relationships and swaps both caches.
// A 200 body carrying an "error" key means the API key was rejected;
// that surfaces as an authentication failure and leaves the caches
// untouched.
func (s *Service) All(ctx context.Context, query url.Values) ([]*Folder, error) {
	batch, err := s.fetchChecked(ctx, query)
	if err != nil {
		return nil, err
	}

	flat, byName, seqByName := resolve(batch)

	s.Store().Replace(batch)
	s.seqs.Replace(flat)
	s.byName = byName
	s.seqByName = seqByName

	s.log.Debug("folder cache refreshed", "folders", len(batch), "sequences", len(flat))
	return batch, nil
}

// Create posts a new folder after validating the payload.
func (s *Service) Create(ctx context.Context, opts CreateOptions) (json.RawMessage, error) {
	if opts.Type == "" {
		opts.Type = TypeInventory
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("create folder: %w: %w", record.ErrValidation, err)
	}
	return s.Collection.Create(ctx, opts)
}

// Named returns the cached folders sharing a name. Folder names are not
// unique.
func (s *Service) Named(name string) []*Folder {
	return s.byName[name]
}

// SequencesNamed returns the cached sequences sharing a name.
func (s *Service) SequencesNamed(name string) []*sequence.Sequence {
	return s.seqByName[name]
}

func (s *Service) fetchChecked(ctx context.Context, query url.Values) ([]*Folder, error) {
	raw, err := s.Collection.FetchAllRaw(ctx, query)
	if err != nil {
		return nil, err
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode folders list: %w", err)
	}
	if _, ok := env["error"]; ok {
		return nil, fmt.Errorf("folders listing rejected, check the API key: %w", record.ErrAuthentication)
	}

	return s.DecodeList(raw)
}

// resolve is the post-fetch relationship pass. It runs once per
// refresh, before the cache swap, so lookups never observe a partially
// resolved batch: every embedded sequence is stamped with its owning
// folder id, flattened (first occurrence of an id wins) and indexed by
// name alongside the folders.
func resolve(batch []*Folder) (flat []*sequence.Sequence, byName map[string][]*Folder, seqByName map[string][]*sequence.Sequence) {
	byName = map[string][]*Folder{}
	seqByName = map[string][]*sequence.Sequence{}
	seen := map[string]bool{}

	for _, f := range batch {
		byName[f.Name] = append(byName[f.Name], f)
		for _, seq := range f.Sequences {
			seq.Folder = f.ID
			seq.Normalize()
			if !seen[seq.ID] {
				seen[seq.ID] = true
				flat = append(flat, seq)
			}
			seqByName[seq.Name] = append(seqByName[seq.Name], seq)
		}
	}
	return flat, byName, seqByName
}
