package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quizhub/quizhub/internal/auth"
	"github.com/quizhub/quizhub/internal/config"
	"github.com/quizhub/quizhub/internal/domain"
	"github.com/quizhub/quizhub/internal/game"
)

// historyLimit is how many past games the profile history returns.
const historyLimit = 20

// GameHistory lists a user's past game results.
type GameHistory interface {
	History(ctx context.Context, userID string, limit int) ([]*game.GameSession, error)
}

type Handler struct {
	service UserService
	games   GameHistory
}

func NewHandler(s UserService, games GameHistory) *Handler {
	return &Handler{service: s, games: games}
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, err := h.service.Signup(r.Context(), req)
	if errors.Is(err, domain.ErrUserExists) {
		config.Error(w, http.StatusBadRequest, "Username or email already in use")
		return
	}
	if err != nil {
		log.WithError(err).Error("signup failed")
		config.Error(w, http.StatusBadRequest, "Could not create account")
		return
	}

	if err := h.issueSession(w, u); err != nil {
		log.WithError(err).Error("failed to issue session token")
		config.Error(w, http.StatusInternalServerError, "Could not start session")
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message":  "Signup successful",
		"username": u.Username,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, err := h.service.Login(r.Context(), req)
	if errors.Is(err, domain.ErrCredentials) {
		config.Error(w, http.StatusBadRequest, "Invalid credentials")
		return
	}
	if err != nil {
		log.WithError(err).Error("login failed")
		config.Error(w, http.StatusInternalServerError, "Could not log in")
		return
	}

	if err := h.issueSession(w, u); err != nil {
		log.WithError(err).Error("failed to issue session token")
		config.Error(w, http.StatusInternalServerError, "Could not start session")
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message":  "Login successful",
		"username": u.Username,
	})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), claims.UserID)
	if errors.Is(err, domain.ErrUserNotFound) {
		config.Error(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		log.WithError(err).Error("failed to load profile")
		config.Error(w, http.StatusInternalServerError, "Could not load profile")
		return
	}

	config.JSON(w, http.StatusOK, profile)
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	games, err := h.games.History(r.Context(), claims.UserID, historyLimit)
	if err != nil {
		log.WithError(err).Error("failed to load game history")
		config.Error(w, http.StatusInternalServerError, "Could not load history")
		return
	}

	config.JSON(w, http.StatusOK, games)
}

func (h *Handler) issueSession(w http.ResponseWriter, u *User) error {
	token, err := auth.GenerateJWT(u.ID.String(), u.Username, auth.TokenTTL)
	if err != nil {
		return err
	}
	auth.SetSessionCookie(w, token)
	return nil
}
