package http

import (
	"net/http"

	"github.com/MKhiriev/review-site/internal/logger"
	"github.com/MKhiriev/review-site/internal/utils"
	"github.com/MKhiriev/review-site/models"
)

// getServerVersion serves GET /api/version.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := models.VersionResponse{Version: h.services.AppInfoService.GetAppVersion(r.Context())}

	if _, err := utils.WriteJSON(w, version, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing version response")
	}
}
