// Command batch runs one normalization pass over the staging
// container: every pending decision gets its identifier, cleaned text,
// ISO-8601 dates, and label status, then moves to the normalized
// container. Exit code 1 signals a run-level failure; per-decision
// failures are logged and retried on the next invocation.
package main

import (
	"context"
	"log"
	"os"

	"github.com/Cour-de-cassation/juritj-collect/internal/config"
	"github.com/Cour-de-cassation/juritj-collect/internal/decisions"
	"github.com/Cour-de-cassation/juritj-collect/internal/infrastructure"
	"github.com/Cour-de-cassation/juritj-collect/internal/normalization"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed:", err)
	}

	infra, err := infrastructure.New(cfg)
	if err != nil {
		log.Fatal("infrastructure init failed:", err)
	}

	if err := infra.Start(); err != nil {
		log.Fatal("infrastructure start failed:", err)
	}
	infra.Lifecycle.WaitForStartup()

	logger := infra.Logger.With("module", "batch")

	metadata := decisions.New(
		infra.Database.Connection(),
		infra.RawStorage,
		logger,
		cfg.API.Pagination,
	)

	staging := normalization.NewBlobStaging(
		infra.RawStorage,
		infra.NormalizedStorage,
		cfg.Batch.ListPageSize,
	)

	pipeline := normalization.NewPipeline(
		staging,
		metadata,
		normalization.DefaultCodeLists(),
		logger,
	)

	results, err := pipeline.Run(context.Background())

	if shutdownErr := infra.Lifecycle.Shutdown(cfg.ShutdownTimeoutDuration()); shutdownErr != nil {
		logger.Error("shutdown failed", "error", shutdownErr)
	}

	if err != nil {
		logger.Error("normalization batch failed", "error", err)
		os.Exit(1)
	}

	logger.Info("normalization batch complete", "normalized", len(results))
}
