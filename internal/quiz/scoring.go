package quiz

import (
	"fmt"

	"github.com/quizhub/quizhub/internal/domain"
)

// Score grades a submission against the stored question set.
//
// The total equals the number of submitted answers: a partial
// submission scores against only what was submitted. A blank answer is
// simply incorrect, but an answer whose index falls outside the quiz
// fails the whole batch with domain.ErrMalformedSubmission; silently
// skipping it would produce a misleading partial score.
func Score(questions []domain.Question, answers []domain.AnswerSubmission) (int, []domain.AnswerDetail, error) {
	score := 0
	detail := make([]domain.AnswerDetail, 0, len(answers))

	for _, ans := range answers {
		if ans.ID < 0 || ans.ID >= len(questions) {
			return 0, nil, fmt.Errorf("%w: index %d out of range", domain.ErrMalformedSubmission, ans.ID)
		}
		question := questions[ans.ID]

		chosen := ""
		if ans.ChosenAnswer != nil {
			chosen = *ans.ChosenAnswer
		}

		isCorrect := chosen != "" && chosen == question.Answer
		if isCorrect {
			score++
		}

		detail = append(detail, domain.AnswerDetail{
			Index:         ans.ID,
			Question:      question.Text,
			ChosenAnswer:  chosen,
			CorrectAnswer: question.Answer,
			IsCorrect:     isCorrect,
		})
	}

	return score, detail, nil
}
