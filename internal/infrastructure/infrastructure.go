// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, database, storage) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Cour-de-cassation/juritj-collect/internal/config"
	"github.com/Cour-de-cassation/juritj-collect/pkg/database"
	"github.com/Cour-de-cassation/juritj-collect/pkg/lifecycle"
	"github.com/Cour-de-cassation/juritj-collect/pkg/storage"
)

// Infrastructure holds the core systems required by all domain modules.
// RawStorage is the staging container that receives intake envelopes;
// NormalizedStorage receives normalization batch output.
type Infrastructure struct {
	Lifecycle         *lifecycle.Coordinator
	Logger            *slog.Logger
	Database          database.System
	RawStorage        storage.System
	NormalizedStorage storage.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	raw, err := storage.New(&cfg.RawStorage, logger)
	if err != nil {
		return nil, fmt.Errorf("raw storage init failed: %w", err)
	}

	normalized, err := storage.New(&cfg.NormalizedStore, logger)
	if err != nil {
		return nil, fmt.Errorf("normalized storage init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle:         lc,
		Logger:            logger,
		Database:          db,
		RawStorage:        raw,
		NormalizedStorage: normalized,
	}, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
// Database and storage hooks are registered for startup and shutdown coordination.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.RawStorage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("raw storage start failed: %w", err)
	}
	if err := i.NormalizedStorage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("normalized storage start failed: %w", err)
	}
	return nil
}
