package quiz

import (
	"context"
	"fmt"

	"github.com/quizhub/quizhub/internal/config"
	"github.com/quizhub/quizhub/internal/domain"
)

const (
	defaultAmount = 10
	maxAmount     = 50
)

// UserHistory reads and extends a user's recently-served bank indices.
type UserHistory interface {
	RecentQuestions(ctx context.Context, userID string) ([]int, error)
	PushRecentQuestions(ctx context.Context, userID string, indices []int) error
}

// ResultRecorder persists a finalized game result and returns its id.
type ResultRecorder interface {
	Record(ctx context.Context, userID string, score, total int, detail []domain.AnswerDetail) (string, error)
}

type Service interface {
	CreateQuiz(ctx context.Context, userID string, req CreateQuizRequest) (*CreateQuizResponse, error)
	SubmitQuiz(ctx context.Context, userID string, req SubmitQuizRequest) (*SubmitQuizResponse, error)
}

type service struct {
	store    Store
	selector *Selector
	history  UserHistory
	results  ResultRecorder
}

func NewService(store Store, selector *Selector, history UserHistory, results ResultRecorder) Service {
	return &service{
		store:    store,
		selector: selector,
		history:  history,
		results:  results,
	}
}

func (s *service) CreateQuiz(ctx context.Context, userID string, req CreateQuizRequest) (*CreateQuizResponse, error) {
	log := config.WithContext(ctx)

	amount := req.Amount
	if amount <= 0 {
		amount = defaultAmount
	}
	if amount > maxAmount {
		amount = maxAmount
	}

	recent, err := s.history.RecentQuestions(ctx, userID)
	if err != nil {
		// A quiz without de-duplication beats no quiz at all.
		log.WithError(err).Warn("could not load recent question history")
		recent = nil
	}

	questions, picked, err := s.selector.Select(ctx, amount, req.Category, req.Difficulty, recent)
	if err != nil {
		log.WithError(err).Error("failed to select questions")
		return nil, err
	}

	quizID, err := s.store.Create(ctx, userID, questions)
	if err != nil {
		log.WithError(err).Error("failed to store quiz session")
		return nil, err
	}

	if len(picked) > 0 {
		if err := s.history.PushRecentQuestions(ctx, userID, picked); err != nil {
			log.WithError(err).Warn("could not update recent question history")
		}
	}

	views := make([]domain.QuestionView, len(questions))
	for i, q := range questions {
		views[i] = q.View(i)
	}

	log.WithField("quiz_id", quizID).Info("quiz created")
	return &CreateQuizResponse{QuizID: quizID, Questions: views}, nil
}

func (s *service) SubmitQuiz(ctx context.Context, userID string, req SubmitQuizRequest) (*SubmitQuizResponse, error) {
	log := config.WithContext(ctx)

	session, err := s.store.TakeAndInvalidate(ctx, req.QuizID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		// Someone else's quiz id; indistinguishable from an expired one.
		log.Warn("submission for a quiz owned by another user")
		return nil, domain.ErrQuizNotFound
	}

	score, detail, err := Score(session.Questions, req.Answers)
	if err != nil {
		return nil, err
	}

	gameID, err := s.results.Record(ctx, userID, score, len(req.Answers), detail)
	if err != nil {
		log.WithError(err).Error("failed to persist game result")
		return nil, fmt.Errorf("failed to save game result: %w", err)
	}

	log.WithField("game_id", gameID).WithField("score", score).Info("quiz submitted")
	return &SubmitQuizResponse{
		Score:     score,
		Total:     len(req.Answers),
		GameID:    gameID,
		Questions: detail,
	}, nil
}
