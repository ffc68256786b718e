package user

import (
	"github.com/go-chi/chi/v5"
	"github.com/quizhub/quizhub/internal/auth"
)

// Routes are the authenticated profile endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Get("/me", h.GetUser)
	r.Get("/me/history", h.GetHistory)
	return r
}
