package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/review-site/internal/logger"
	"github.com/MKhiriev/review-site/internal/utils"
	"github.com/MKhiriev/review-site/models"
)

// ownerRouter mounts ownerOnly the way Init does, with the caller injected
// directly instead of going through auth.
func ownerRouter(caller *models.Identity, next http.HandlerFunc) http.Handler {
	h := &Handler{logger: logger.Nop()}

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r = injectNopLogger(r)
			if caller != nil {
				r = r.WithContext(utils.WithIdentity(r.Context(), *caller))
			}
			next.ServeHTTP(w, r)
		})
	})
	router.Route("/api/users/{userID}", func(r chi.Router) {
		r.Use(h.ownerOnly)
		r.Put("/reviews/{reviewID}", next)
	})
	return router
}

func TestOwnerOnly_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		caller     *models.Identity
		pathUser   string
		wantStatus int
		wantNext   bool
	}{
		{name: "owner passes", caller: &alice, pathUser: aliceID, wantStatus: http.StatusOK, wantNext: true},
		{name: "another user → 401", caller: &bob, pathUser: aliceID, wantStatus: http.StatusUnauthorized},
		{name: "no identity → 401", caller: nil, pathUser: aliceID, wantStatus: http.StatusUnauthorized},
		{name: "own id upper-cased → 400", caller: &alice, pathUser: "0190A6F2-1111-7000-8000-000000000001", wantStatus: http.StatusBadRequest},
		{name: "malformed id → 400", caller: &alice, pathUser: "alice", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			router := ownerRouter(tt.caller, func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPut, "/api/users/"+tt.pathUser+"/reviews/"+reviewID, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}
