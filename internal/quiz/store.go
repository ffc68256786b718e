package quiz

import (
	"context"
	"fmt"
	"time"

	"github.com/quizhub/quizhub/internal/domain"
)

// Store holds active quiz sessions between creation and submission.
// Implementations must make TakeAndInvalidate atomic: two concurrent
// submissions for one id resolve to exactly one success and one
// domain.ErrQuizNotFound, which is what prevents double-scoring.
type Store interface {
	// Create inserts a new session and returns its id. Ids are derived
	// from the user id and creation time and are never reused while an
	// entry is live.
	Create(ctx context.Context, userID string, questions []domain.Question) (string, error)
	// TakeAndInvalidate removes and returns the session, exactly once.
	// Unknown, expired or already-consumed ids yield domain.ErrQuizNotFound.
	TakeAndInvalidate(ctx context.Context, quizID string) (*Session, error)
	// SweepExpired drops sessions older than maxAge and reports how
	// many were removed.
	SweepExpired(ctx context.Context, maxAge time.Duration) int
}

func quizID(userID string, createdAt time.Time) string {
	return fmt.Sprintf("%s_%d", userID, createdAt.UnixMilli())
}
