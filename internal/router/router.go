package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/quizhub/quizhub/internal/auth"
	"github.com/quizhub/quizhub/internal/config"
	"github.com/quizhub/quizhub/internal/game"
	"github.com/quizhub/quizhub/internal/middlewares"
	"github.com/quizhub/quizhub/internal/quiz"
	"github.com/quizhub/quizhub/internal/user"
)

type RouterConfig struct {
	UserHandler *user.Handler
	QuizHandler *quiz.Handler
	GameHandler *game.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", cfg.UserHandler.Signup)
			r.Post("/login", cfg.UserHandler.Login)
			r.Post("/logout", auth.NewHandler().Logout)
		})

		r.Mount("/quiz", quiz.Routes(cfg.QuizHandler))
		r.Mount("/user", user.Routes(cfg.UserHandler))
		r.Mount("/leaderboard", game.Routes(cfg.GameHandler))
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		config.Error(w, http.StatusNotFound, "API endpoint not found")
	})

	return r
}
