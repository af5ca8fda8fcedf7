package backendstub

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler returns the router serving the backend endpoints.
func (s *Stub) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withRequestID, s.withLogging)

	router.Route("/whatsapp", func(r chi.Router) {
		r.Post("/messages", s.sendMessage)
		r.Get("/messages/{id}/status", s.messageStatus)
		r.Post("/media", s.uploadMedia)
		r.Get("/templates/{id}/status", s.templateReview)
	})

	return router
}
