package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User is a registered player. RecentQuestions holds the bank indices
// served to the user lately (newest first, capped at 30) so fresh
// quizzes bias away from repeats.
type User struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Username        string         `gorm:"type:text;not null;uniqueIndex" json:"username"`
	Email           string         `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PasswordHash    string         `gorm:"type:text;not null" json:"-"`
	RecentQuestions datatypes.JSON `gorm:"type:jsonb" json:"-"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// Profile is the client-facing slice of a user record.
type Profile struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}
