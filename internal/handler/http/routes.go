package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withGZip)
	if h.signer != nil {
		router.Use(h.withResponseHashing)
	}

	router.Get("/api/config", h.getConfig)
	router.Get("/api/config/chain", h.getConfigChain)
	router.Get("/api/site", h.getSite)
	router.Get("/api/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
