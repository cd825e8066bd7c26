package http

import (
	"github.com/MKhiriev/go-site-config/internal/config"
	"github.com/MKhiriev/go-site-config/internal/logger"
	"github.com/MKhiriev/go-site-config/internal/service"
	"github.com/MKhiriev/go-site-config/internal/utils"
)

type Handler struct {
	services *service.Services
	signer   *utils.Signer
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. When cfg carries a hash key every
// response body is signed with it.
func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
	if cfg.HashKey != "" {
		h.signer = utils.NewSigner(cfg.HashKey)
	}

	logger.Info().Bool("signing", h.signer != nil).Msg("http handler created")
	return h
}
