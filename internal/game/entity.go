package game

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GameSession is one finished quiz: the score plus the per-question
// detail the results page renders. Immutable once created.
type GameSession struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Score     int            `gorm:"not null" json:"score"`
	Total     int            `gorm:"not null;default:10" json:"total"`
	Questions datatypes.JSON `gorm:"type:jsonb;not null" json:"questions"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// LeaderboardEntry is one aggregated row of the top-players board.
type LeaderboardEntry struct {
	Username    string `json:"username"`
	BestScore   int    `json:"bestScore"`
	GamesPlayed int    `json:"gamesPlayed"`
}
