package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/review-site/internal/service"
	"github.com/MKhiriev/review-site/internal/utils"
	"github.com/MKhiriev/review-site/internal/validators"
)

const userIDParam = "userID"

// ownerOnly lets the request through only when the {userID} path segment
// names the authenticated caller. It must run after auth. A {userID} that is
// not a lower-case UUID is answered with 400.
func (h *Handler) ownerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pathUserID := chi.URLParam(r, userIDParam)
		if !utils.IsUUID(pathUserID) {
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidUserID))
			return
		}

		identity, ok := utils.GetIdentityFromContext(r.Context())
		if !ok || identity.UserID != pathUserID {
			writeError(w, r, service.ErrNotOwner)
			return
		}

		next.ServeHTTP(w, r)
	})
}
