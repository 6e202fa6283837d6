package http

import (
	"net/http"

	"github.com/MKhiriev/review-site/internal/logger"
	"github.com/MKhiriev/review-site/internal/utils"
	"github.com/MKhiriev/review-site/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		writeError(w, r, err)
		return
	}

	identity, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", identity.UserID).Msg("user registered")
	utils.WriteJSON(w, identity, http.StatusCreated)
}

// login answers with the token in the body and, as a convenience, in the
// Authorization response header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		writeError(w, r, err)
		return
	}

	identity, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, identity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", identity.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", bearerPrefix+token.SignedString)
	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, identity, http.StatusOK)
}
