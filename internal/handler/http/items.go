package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/review-site/internal/utils"
)

const itemIDParam = "itemID"

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ItemService.ListItems(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.services.ItemService.GetItem(r.Context(), chi.URLParam(r, itemIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}
