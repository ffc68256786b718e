package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quizhub/quizhub/internal/auth"
	"github.com/quizhub/quizhub/internal/config"
	"github.com/quizhub/quizhub/internal/domain"
	"github.com/quizhub/quizhub/internal/trivia"
)

// CategorySource lists the provider's question categories.
type CategorySource interface {
	Categories(ctx context.Context) ([]trivia.Category, error)
}

type Handler struct {
	service    Service
	categories CategorySource
}

func NewHandler(s Service, categories CategorySource) *Handler {
	return &Handler{service: s, categories: categories}
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	var req CreateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("invalid create quiz request body")
		config.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.CreateQuiz(r.Context(), claims.UserID, req)
	if err != nil {
		log.WithError(err).Error("failed to create quiz")
		config.Error(w, http.StatusInternalServerError, "Could not create quiz")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	var req SubmitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("invalid submit quiz request body")
		config.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.QuizID == "" {
		config.Error(w, http.StatusBadRequest, "quizId is required")
		return
	}

	resp, err := h.service.SubmitQuiz(r.Context(), claims.UserID, req)
	switch {
	case errors.Is(err, domain.ErrQuizNotFound):
		config.Error(w, http.StatusBadRequest, "Quiz not found or expired")
		return
	case errors.Is(err, domain.ErrMalformedSubmission):
		config.Error(w, http.StatusBadRequest, "Submission references an invalid question")
		return
	case err != nil:
		log.WithError(err).Error("failed to submit quiz")
		config.Error(w, http.StatusInternalServerError, "Could not submit quiz")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	categories, err := h.categories.Categories(r.Context())
	if err != nil {
		log.WithError(err).Warn("failed to fetch trivia categories")
		config.Error(w, http.StatusBadGateway, "Categories are unavailable right now")
		return
	}

	config.JSON(w, http.StatusOK, categories)
}
