package game

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/quizhub/quizhub/internal/config"
	"github.com/quizhub/quizhub/internal/domain"
)

type Service interface {
	// Record persists a finalized quiz result and returns the game id.
	Record(ctx context.Context, userID string, score, total int, detail []domain.AnswerDetail) (string, error)
	History(ctx context.Context, userID string, limit int) ([]*GameSession, error)
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

type gameService struct {
	repo GameRepository
}

func NewService(repo GameRepository) Service {
	return &gameService{repo: repo}
}

func (s *gameService) Record(ctx context.Context, userID string, score, total int, detail []domain.AnswerDetail) (string, error) {
	log := config.WithContext(ctx)

	uid, err := uuid.Parse(userID)
	if err != nil {
		return "", fmt.Errorf("invalid user id: %w", err)
	}

	payload, err := json.Marshal(detail)
	if err != nil {
		return "", fmt.Errorf("failed to encode answer detail: %w", err)
	}

	session := &GameSession{
		ID:        uuid.New(),
		UserID:    uid,
		Score:     score,
		Total:     total,
		Questions: datatypes.JSON(payload),
	}
	if err := s.repo.Create(session); err != nil {
		log.WithError(err).Error("failed to save game session")
		return "", err
	}

	return session.ID.String(), nil
}

func (s *gameService) History(ctx context.Context, userID string, limit int) ([]*GameSession, error) {
	games, err := s.repo.ListByUser(userID, limit)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("failed to list game history")
		return nil, err
	}
	return games, nil
}

func (s *gameService) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	entries, err := s.repo.TopPlayers(limit)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("failed to load leaderboard")
		return nil, err
	}
	return entries, nil
}
