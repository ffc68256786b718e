package game

import (
	"net/http"

	"github.com/quizhub/quizhub/internal/config"
)

// leaderboardSize is how many players the public board shows.
const leaderboardSize = 10

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Leaderboard(r.Context(), leaderboardSize)
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "Could not load leaderboard")
		return
	}

	config.JSON(w, http.StatusOK, entries)
}
