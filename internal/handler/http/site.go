package http

import (
	"net/http"

	"github.com/MKhiriev/go-site-config/internal/logger"
	"github.com/MKhiriev/go-site-config/internal/utils"
	"github.com/MKhiriev/go-site-config/models"
)

const siteDirHeader = "X-Site-Dir"

// getConfig writes the merged configuration of the site, keys in file order.
func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	site, err := h.services.SiteConfigService.GetSite(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set(siteDirHeader, site.Config.Dir())
	if _, err := utils.WriteJSON(w, site.Config.Values(), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getConfig").Msg("error writing configuration")
	}
}

// getConfigChain writes the list of files that were merged, the site's own
// file first.
func (h *Handler) getConfigChain(w http.ResponseWriter, r *http.Request) {
	site, err := h.services.SiteConfigService.GetSite(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := models.ChainResponse{
		SiteDir: site.Config.Dir(),
		Chain:   site.Chain,
	}
	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getConfigChain").Msg("error writing chain")
	}
}

func (h *Handler) getSite(w http.ResponseWriter, r *http.Request) {
	resp := h.services.SiteConfigService.IsSiteRoot(r.Context())
	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getSite").Msg("error writing site info")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	traceID, _ := utils.GetTraceIDFromContext(r.Context())

	logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Error: err.Error(), TraceID: traceID}, status); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Str("func", "*Handler.writeError").Msg("error writing error response")
	}
}
