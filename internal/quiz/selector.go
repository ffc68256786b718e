package quiz

import (
	"context"
	"fmt"

	"github.com/quizhub/quizhub/internal/config"
	"github.com/quizhub/quizhub/internal/domain"
)

// QuestionProvider is the external trivia API. It is untrusted and
// allowed to fail; selection recovers via the local bank.
type QuestionProvider interface {
	FetchQuestions(ctx context.Context, amount int, category, difficulty string) ([]domain.Question, error)
}

// QuestionBank is the local fallback pool.
type QuestionBank interface {
	Pick(count int, recent []int) ([]domain.Question, []int)
	Size() int
}

// Selector implements the question-selection policy: provider first,
// local bank on any provider failure. Per-user recent-question history
// only applies to the bank path, because provider questions have no
// stable identity across fetches; the returned bank indices are empty
// when the provider served the quiz.
type Selector struct {
	provider QuestionProvider
	bank     QuestionBank
}

func NewSelector(provider QuestionProvider, bank QuestionBank) *Selector {
	return &Selector{provider: provider, bank: bank}
}

// Select returns count questions when the chosen source can supply
// them, or everything the source has when it cannot.
func (s *Selector) Select(ctx context.Context, count int, category, difficulty string, recent []int) ([]domain.Question, []int, error) {
	log := config.WithContext(ctx)

	questions, err := s.provider.FetchQuestions(ctx, count, category, difficulty)
	if err == nil && len(questions) > 0 {
		log.WithField("count", len(questions)).Info("fetched questions from trivia API")
		return questions, nil, nil
	}
	if err != nil {
		log.WithError(err).Warn("trivia API failed, using local questions")
	} else {
		log.Warn("trivia API returned no questions, using local questions")
	}

	questions, picked := s.bank.Pick(count, recent)
	if len(questions) == 0 {
		return nil, nil, fmt.Errorf("no questions available for quiz")
	}
	if len(questions) < count {
		log.WithField("count", len(questions)).Warn("local bank could not fill the requested amount")
	}
	return questions, picked, nil
}
