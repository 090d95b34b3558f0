// Package app contains the application setup for the storefront.
package app

import (
	"log/slog"
	"net/http"

	"github.com/abdelghafour233/MATJARUNA/internal/assistant"
	"github.com/abdelghafour233/MATJARUNA/internal/config"
	"github.com/abdelghafour233/MATJARUNA/internal/notify"
	"github.com/abdelghafour233/MATJARUNA/internal/storage"
	"github.com/abdelghafour233/MATJARUNA/internal/store"
	"github.com/abdelghafour233/MATJARUNA/internal/transport/rest"
	"github.com/abdelghafour233/MATJARUNA/pkg/server"
	"github.com/go-chi/chi/v5"
)

type Dependencies struct {
	Store     *store.Store
	Responder assistant.Responder
	Publisher notify.Publisher
	Logger    *slog.Logger
}

// SetupDependencies wires storage, store, assistant, and the order export
// publisher together.
func SetupDependencies(st storage.Storage, cfg *config.Config, logger *slog.Logger) *Dependencies {
	appStore := store.New(st, logger)

	// The webhook URL lives in the shop settings, so it is resolved per publish.
	publisher := notify.NewSheetPublisher(func() string {
		return appStore.Settings().GoogleSheetURL
	}, cfg.Notify.Timeout)

	return &Dependencies{
		Store:     appStore,
		Responder: assistant.NewGemini(cfg.Assistant),
		Publisher: publisher,
		Logger:    logger,
	}
}

// SetupHttpHandler initializes the HTTP routes for the storefront.
// Also used by handler tests to set up the full middleware stack.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the storefront.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	handler := rest.NewHandler(deps.Store, deps.Responder, deps.Publisher, deps.Logger)
	handler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures the HTTP server for the storefront.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
