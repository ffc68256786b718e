package quiz

import (
	"time"

	"github.com/quizhub/quizhub/internal/domain"
)

// Session is the server-side state of an issued quiz: the question set
// with the correct answers. It lives only in the Store between quiz
// creation and submission and is never mutated after creation.
type Session struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Questions []domain.Question `json:"questions"`
	CreatedAt time.Time         `json:"created_at"`
}

// CreateQuizRequest is the body of POST /api/quiz/new.
type CreateQuizRequest struct {
	Amount     int    `json:"amount"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

// CreateQuizResponse carries the issued quiz id and the questions with
// the correct answers stripped.
type CreateQuizResponse struct {
	QuizID    string                `json:"quizId"`
	Questions []domain.QuestionView `json:"questions"`
}

// SubmitQuizRequest is the body of POST /api/quiz/submit.
type SubmitQuizRequest struct {
	QuizID  string                    `json:"quizId"`
	Answers []domain.AnswerSubmission `json:"answers"`
}

// SubmitQuizResponse is the scored outcome of a submission.
type SubmitQuizResponse struct {
	Score     int                   `json:"score"`
	Total     int                   `json:"total"`
	GameID    string                `json:"gameId"`
	Questions []domain.AnswerDetail `json:"questions"`
}
