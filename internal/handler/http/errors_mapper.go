package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/review-site/internal/logger"
	"github.com/MKhiriev/review-site/internal/service"
	"github.com/MKhiriev/review-site/internal/store"
	"github.com/MKhiriev/review-site/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrRouteNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:           http.StatusMethodNotAllowed,
	utils.ErrEmptyBody:            http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrInvalidToken:        http.StatusUnauthorized,
	service.ErrUnknownTokenOwner:   http.StatusUnauthorized,
	service.ErrNotOwner:            http.StatusUnauthorized,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,
	service.ErrStorageUnavailable:  http.StatusServiceUnavailable,

	store.ErrConflict: http.StatusConflict,
	store.ErrNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers the request with the status mapped from err.
// Server-side failures are logged in full and reported with a generic
// message so that storage details never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("request failed")
		utils.WriteJSONError(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteJSONError(w, err.Error(), status)
}
