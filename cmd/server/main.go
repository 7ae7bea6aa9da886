package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/prateekh777/AIInterviewV4-0/internal/config"
	"github.com/prateekh777/AIInterviewV4-0/internal/server"
	"github.com/prateekh777/AIInterviewV4-0/internal/storage"
	"github.com/prateekh777/AIInterviewV4-0/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	store, err := newStorage(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize storage")
	}

	if cfg.SeedSampleJobs && cfg.StorageBackend == "memory" {
		if err := storage.SeedSampleJobs(store); err != nil {
			log.Fatal().Err(err).Msg("failed to seed sample jobs")
		}
		log.Info().Msg("seeded sample jobs")
	}

	srv := server.New(cfg, store, log).HTTPServer()

	log.Info().
		Str("port", cfg.Port).
		Str("backend", cfg.StorageBackend).
		Str("env", cfg.Env).
		Msg("starting job board server")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// newStorage picks the storage backend from the configuration. The
// in-memory backend is the default; postgres carries the same interface.
func newStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.StorageBackend {
	case "postgres":
		return storage.NewGormStorage(cfg.DB.DSN())
	default:
		return storage.NewMemStorage(), nil
	}
}
