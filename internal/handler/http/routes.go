package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/dandelion/version", h.getVersion)

	// diagnostics are a development tool, disabled by the prod defaults
	if h.cfg.IsToolBundleGraphEnabled() {
		router.Group(func(r chi.Router) {
			r.Get("/dandelion/config", h.getConfiguration)
			r.Get("/dandelion/assets/{name}", h.redirectToAsset)
		})
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
