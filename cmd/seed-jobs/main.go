// Command seed-jobs loads the sample job set into the postgres backend.
// The in-memory backend seeds itself at server startup; this tool exists
// for durable deployments where seeding is a one-off admin step.
package main

import (
	"context"

	"github.com/prateekh777/AIInterviewV4-0/internal/config"
	"github.com/prateekh777/AIInterviewV4-0/internal/storage"
	"github.com/prateekh777/AIInterviewV4-0/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	store, err := storage.NewGormStorage(cfg.DB.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer func() { _ = store.Close() }()

	if err := storage.SeedSampleJobs(store); err != nil {
		log.Fatal().Err(err).Msg("failed to seed sample jobs")
	}

	log.Info().Int("jobs", len(storage.SampleJobs())).Msg("sample jobs seeded")
}
