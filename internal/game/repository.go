package game

import (
	"gorm.io/gorm"
)

type GameRepository interface {
	Create(g *GameSession) error
	ListByUser(userID string, limit int) ([]*GameSession, error)
	TopPlayers(limit int) ([]LeaderboardEntry, error)
}

type gameRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Create(g *GameSession) error {
	return r.db.Create(g).Error
}

func (r *gameRepository) ListByUser(userID string, limit int) ([]*GameSession, error) {
	var games []*GameSession
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// TopPlayers aggregates each user's best score and games played,
// highest best score first.
func (r *gameRepository) TopPlayers(limit int) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	if err := r.db.
		Table("game_sessions").
		Select("users.username AS username, MAX(game_sessions.score) AS best_score, COUNT(game_sessions.id) AS games_played").
		Joins("JOIN users ON users.id = game_sessions.user_id").
		Group("users.id, users.username").
		Order("best_score DESC").
		Limit(limit).
		Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
