package client

import (
	"context"
	"fmt"
	"net/url"

	"golang.org/x/exp/slog"

	"benchkit/internal/app/client/config"
	"benchkit/internal/domain/alignment"
	"benchkit/internal/domain/entity"
	"benchkit/internal/domain/folder"
	"benchkit/internal/domain/record"
	"benchkit/internal/domain/search"
	"benchkit/internal/domain/sequence"
)

// App is one client session. It owns the transport, one registry per
// record type and the domain services; dropping the App drops every
// cache with it. Nothing here is safe for concurrent use: a refresh
// clears and repopulates caches in place.
type App struct {
	config *config.Config
	log    *slog.Logger
	tx     *Transport

	folderStore *record.Store[*folder.Folder]
	seqStore    *record.Store[*sequence.Sequence]
	entityStore *record.Store[*entity.Entity]

	Folders    *folder.Service
	Sequences  *sequence.Service
	Entities   *entity.Service
	Alignments *alignment.Service
	Search     *search.Service
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("no API key configured: %w", record.ErrAuthentication)
	}

	tx, err := NewTransport(cfg.BaseURL, cfg.APIKey, log)
	if err != nil {
		return nil, fmt.Errorf("init transport: %w", err)
	}

	app := &App{
		config: cfg,
		log:    log,
		tx:     tx,

		folderStore: record.NewStore[*folder.Folder](),
		seqStore:    record.NewStore[*sequence.Sequence](),
		entityStore: record.NewStore[*entity.Entity](),
	}

	app.Folders = folder.NewService(tx, app.folderStore, app.seqStore, log)
	app.Sequences = sequence.NewService(tx, app.seqStore, log)
	app.Entities = entity.NewService(tx, app.entityStore, log)
	app.Alignments = alignment.NewService(tx, log)
	app.Search = search.NewService(tx, log)

	return app, nil
}

// Refresh repopulates the folder and sequence caches from the folder
// tree in one pass.
func (a *App) Refresh(ctx context.Context) error {
	_, err := a.Folders.All(ctx, url.Values{})
	return err
}

// Reset clears every cache without touching the server.
func (a *App) Reset() {
	a.folderStore.Clear()
	a.seqStore.Clear()
	a.entityStore.Clear()
	a.log.Debug("session caches cleared")
}
