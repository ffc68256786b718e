package auth

import (
	"net/http"

	"github.com/quizhub/quizhub/internal/config"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ClearSessionCookie(w)

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "Logged out",
	})
}
