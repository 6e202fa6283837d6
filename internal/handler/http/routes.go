package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, middleware.Recoverer)

	// set before any Route call so that sub-routers inherit them
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, ErrRouteNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, ErrMethodNotAllowed)
	})

	router.Get("/healthz", h.health)
	router.Method(http.MethodGet, "/metrics", h.metrics.handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.With(h.auth).Get("/me", h.me)
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", h.listItems)

			r.Route("/{itemID}", func(r chi.Router) {
				r.Get("/", h.getItem)
				r.Get("/reviews", h.listItemReviews)
				r.With(h.auth).Post("/reviews", h.createReview)
				r.Get("/reviews/{reviewID}", h.getReview)
				r.Get("/reviews/{reviewID}/comments", h.listReviewComments)
				r.With(h.auth).Post("/reviews/{reviewID}/comments", h.createComment)
			})
		})

		// routes of the authenticated caller
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/reviews/me", h.listMyReviews)
			r.Get("/comments/me", h.listMyComments)
		})

		// owner-only mutations
		r.Route("/users/{userID}", func(r chi.Router) {
			r.Use(h.auth, h.ownerOnly)
			r.Put("/reviews/{reviewID}", h.updateReview)
			r.Delete("/reviews/{reviewID}", h.deleteReview)
			r.Put("/comments/{commentID}", h.updateComment)
			r.Delete("/comments/{commentID}", h.deleteComment)
		})
	})

	return router
}
