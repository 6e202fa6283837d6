package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/review-site/internal/logger"
	"github.com/MKhiriev/review-site/internal/utils"
	"github.com/MKhiriev/review-site/models"
)

const commentIDParam = "commentID"

func (h *Handler) listReviewComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.services.CommentService.ListReviewComments(r.Context(), chi.URLParam(r, itemIDParam), chi.URLParam(r, reviewIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

// createComment attaches a comment to {reviewID}; the review has to belong
// to {itemID}.
func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CommentRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.CommentService.CreateComment(r.Context(), chi.URLParam(r, itemIDParam), models.Comment{
		Text:     req.Body(),
		UserID:   identity.UserID,
		ReviewID: chi.URLParam(r, reviewIDParam),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("comment_id", created.ID).Msg("comment created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listMyComments(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	comments, err := h.services.CommentService.ListUserComments(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) updateComment(w http.ResponseWriter, r *http.Request) {
	var req models.CommentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.CommentService.UpdateComment(r.Context(), models.Comment{
		ID:     chi.URLParam(r, commentIDParam),
		Text:   req.Body(),
		UserID: chi.URLParam(r, userIDParam),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	commentID := chi.URLParam(r, commentIDParam)

	if err := h.services.CommentService.DeleteComment(r.Context(), chi.URLParam(r, userIDParam), commentID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("comment_id", commentID).Msg("comment deleted")
	w.WriteHeader(http.StatusNoContent)
}
