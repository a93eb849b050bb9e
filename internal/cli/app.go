package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/streamhub/streamhub/internal/accounts"
	"github.com/streamhub/streamhub/internal/config"
	"github.com/streamhub/streamhub/internal/logging"
	"github.com/streamhub/streamhub/internal/mediastore"
	"github.com/streamhub/streamhub/internal/recordstore"
	"github.com/streamhub/streamhub/internal/session"
	"github.com/streamhub/streamhub/internal/videos"
)

// App is the interactive StreamHub shell. It owns the wired services, the
// session of this run, and the per-run view gate.
type App struct {
	config   *config.Config
	accounts *accounts.Service
	videos   *videos.Service
	sessions *session.Manager
	media    mediastore.Store
	viewGate *videos.ViewGate
	store    recordstore.Store
	log      logging.Logger
	reader   *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	store, err := newRecordStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	media, err := newMediaStore(cfg)
	if err != nil {
		return nil, err
	}

	accountRepo := accounts.NewStoreRepository(store, log)
	videoRepo := videos.NewStoreRepository(store, log)

	sessions := session.NewManager(store, []byte(cfg.SessionSecretKey), cfg.SessionValidityDuration, log)
	accountService := accounts.NewService(accountRepo, videoRepo, sessions)
	videoService := videos.NewService(videoRepo, accountRepo)

	sessions.Restore(ctx)

	return &App{
		config:   cfg,
		accounts: accountService,
		videos:   videoService,
		sessions: sessions,
		media:    media,
		viewGate: videos.NewViewGate(),
		store:    store,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func newRecordStore(ctx context.Context, cfg *config.Config, log logging.Logger) (recordstore.Store, error) {
	switch cfg.StorageBackend {
	case config.StorageMemory:
		return recordstore.NewMemoryStore(), nil
	case config.StorageFile:
		return recordstore.NewFileStore(cfg.StorageDir)
	case config.StoragePostgres:
		return recordstore.NewPostgresStore(ctx, cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}
}

func newMediaStore(cfg *config.Config) (mediastore.Store, error) {
	switch cfg.MediaBackend {
	case config.MediaLocal:
		return mediastore.NewLocalStore(cfg.MediaDir)
	case config.MediaS3:
		return mediastore.NewS3Store(mediastore.S3Config{
			RootUser:     cfg.S3RootUser,
			RootPassword: cfg.S3RootPassword,
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
		}), nil
	default:
		return nil, fmt.Errorf("unknown media backend: %s", cfg.MediaBackend)
	}
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isSignedIn() bool {
	return a.sessions.Current() != nil
}
