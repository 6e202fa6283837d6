package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/review-site/internal/logger"
	"github.com/MKhiriev/review-site/internal/utils"
	"github.com/MKhiriev/review-site/models"
)

const reviewIDParam = "reviewID"

func (h *Handler) listItemReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.services.ReviewService.ListItemReviews(r.Context(), chi.URLParam(r, itemIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, reviews, http.StatusOK)
}

func (h *Handler) getReview(w http.ResponseWriter, r *http.Request) {
	review, err := h.services.ReviewService.GetReview(r.Context(), chi.URLParam(r, itemIDParam), chi.URLParam(r, reviewIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, review, http.StatusOK)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.ReviewRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.ReviewService.CreateReview(r.Context(), models.Review{
		Text:   req.Body(),
		Rating: req.Rating,
		UserID: identity.UserID,
		ItemID: chi.URLParam(r, itemIDParam),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("review_id", created.ID).Msg("review created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listMyReviews(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	reviews, err := h.services.ReviewService.ListUserReviews(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, reviews, http.StatusOK)
}

// updateReview replaces text and rating of a review owned by {userID}.
func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	var req models.ReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.ReviewService.UpdateReview(r.Context(), models.Review{
		ID:     chi.URLParam(r, reviewIDParam),
		Text:   req.Body(),
		Rating: req.Rating,
		UserID: chi.URLParam(r, userIDParam),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, reviewIDParam)

	if err := h.services.ReviewService.DeleteReview(r.Context(), chi.URLParam(r, userIDParam), reviewID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("review_id", reviewID).Msg("review deleted")
	w.WriteHeader(http.StatusNoContent)
}
