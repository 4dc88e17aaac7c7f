package api

import (
	"net/http"

	"github.com/Cour-de-cassation/juritj-collect/internal/config"
	"github.com/Cour-de-cassation/juritj-collect/pkg/openapi"
	"github.com/Cour-de-cassation/juritj-collect/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	routes.Register(
		mux,
		domain.Decisions.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		newStorageHandler(
			"/storage/raw",
			runtime.RawStorage,
			runtime.Logger,
			cfg.RawStorage.MaxListSize,
		).routes(),
		newStorageHandler(
			"/storage/normalized",
			runtime.NormalizedStorage,
			runtime.Logger,
			cfg.NormalizedStore.MaxListSize,
		).routes(),
	)

	spec, err := openapi.MarshalJSON(buildSpec(cfg))
	if err != nil {
		runtime.Logger.Error("openapi spec generation failed", "error", err)
		return
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(spec))
}
