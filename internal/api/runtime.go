package api

import (
	"github.com/Cour-de-cassation/juritj-collect/internal/config"
	"github.com/Cour-de-cassation/juritj-collect/internal/infrastructure"
	"github.com/Cour-de-cassation/juritj-collect/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle:         infra.Lifecycle,
			Logger:            infra.Logger.With("module", "api"),
			Database:          infra.Database,
			RawStorage:        infra.RawStorage,
			NormalizedStorage: infra.NormalizedStorage,
		},
		Pagination: cfg.API.Pagination,
	}
}
