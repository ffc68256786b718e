package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizhub/quizhub/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestScoreKnownAnswers(t *testing.T) {
	questions := testQuestions() // Q0 answer A, Q1 answer C

	score, detail, err := Score(questions, []domain.AnswerSubmission{
		{ID: 0, ChosenAnswer: strPtr("A")},
		{ID: 1, ChosenAnswer: strPtr("B")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, score)
	require.Len(t, detail, 2)
	assert.True(t, detail[0].IsCorrect)
	assert.Equal(t, "Q0", detail[0].Question)
	assert.Equal(t, "A", detail[0].CorrectAnswer)
	assert.False(t, detail[1].IsCorrect)
	assert.Equal(t, "B", detail[1].ChosenAnswer)
	assert.Equal(t, "C", detail[1].CorrectAnswer)
}

func TestScoreNilAnswerIsIncorrect(t *testing.T) {
	score, detail, err := Score(testQuestions(), []domain.AnswerSubmission{
		{ID: 0, ChosenAnswer: nil},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, score)
	require.Len(t, detail, 1)
	assert.False(t, detail[0].IsCorrect)
	assert.Equal(t, "", detail[0].ChosenAnswer)
}

func TestScoreCaseSensitive(t *testing.T) {
	score, _, err := Score(testQuestions(), []domain.AnswerSubmission{
		{ID: 0, ChosenAnswer: strPtr("a")},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestScoreOutOfRangeFailsWholeBatch(t *testing.T) {
	for _, id := range []int{-1, 2, 100} {
		_, detail, err := Score(testQuestions(), []domain.AnswerSubmission{
			{ID: 0, ChosenAnswer: strPtr("A")},
			{ID: id, ChosenAnswer: strPtr("B")},
		})
		assert.ErrorIs(t, err, domain.ErrMalformedSubmission, "id %d", id)
		assert.Nil(t, detail, "no partial detail on malformed submission")
	}
}

func TestScorePartialSubmissionTotals(t *testing.T) {
	score, detail, err := Score(testQuestions(), []domain.AnswerSubmission{
		{ID: 1, ChosenAnswer: strPtr("C")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, score)
	assert.Len(t, detail, 1, "total follows the submitted answers, not the stored questions")
}

func TestScoreOrderIndependent(t *testing.T) {
	forward := []domain.AnswerSubmission{
		{ID: 0, ChosenAnswer: strPtr("A")},
		{ID: 1, ChosenAnswer: strPtr("C")},
	}
	reversed := []domain.AnswerSubmission{
		{ID: 1, ChosenAnswer: strPtr("C")},
		{ID: 0, ChosenAnswer: strPtr("A")},
	}

	s1, _, err := Score(testQuestions(), forward)
	require.NoError(t, err)
	s2, _, err := Score(testQuestions(), reversed)
	require.NoError(t, err)

	assert.Equal(t, s1, s2)
}
