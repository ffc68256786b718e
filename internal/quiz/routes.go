package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quizhub/quizhub/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/new", h.CreateQuiz)
	r.Post("/submit", h.SubmitQuiz)
	r.Get("/categories", h.ListCategories)
	return r
}
