package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoadsEmbeddedQuestions(t *testing.T) {
	b, err := New()
	require.NoError(t, err)
	require.GreaterOrEqual(t, b.Size(), 20)

	for i, q := range b.questions {
		assert.NotEmpty(t, q.Text, "question %d", i)
		assert.Contains(t, []string{"A", "B", "C", "D"}, q.Answer, "question %d", i)
		assert.NotEmpty(t, q.Option(q.Answer), "question %d has no text under its answer label", i)
	}
}

func TestPickReturnsExactCount(t *testing.T) {
	b, err := New()
	require.NoError(t, err)

	for _, count := range []int{1, 5, 10, b.Size()} {
		questions, picked := b.Pick(count, nil)
		assert.Len(t, questions, count)
		assert.Len(t, picked, count)
	}
}

func TestPickCapsAtPoolSize(t *testing.T) {
	b, err := New()
	require.NoError(t, err)

	questions, _ := b.Pick(b.Size()+50, nil)
	assert.Len(t, questions, b.Size())
}

func TestPickIsAPermutation(t *testing.T) {
	b, err := New()
	require.NoError(t, err)

	_, picked := b.Pick(b.Size(), nil)
	seen := make(map[int]bool, len(picked))
	for _, idx := range picked {
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, b.Size())
		require.False(t, seen[idx], "index %d chosen twice", idx)
		seen[idx] = true
	}
}

func TestPickVariesAcrossRuns(t *testing.T) {
	b, err := New()
	require.NoError(t, err)

	// A uniform shuffle leaves the first slot fixed across 50 runs with
	// probability (1/n)^49, so a constant first pick means a broken shuffle.
	first := make(map[int]bool)
	for i := 0; i < 50; i++ {
		_, picked := b.Pick(b.Size(), nil)
		first[picked[0]] = true
	}
	assert.Greater(t, len(first), 1, "shuffle never moved the first position")
}

func TestPickPrefersUnseenQuestions(t *testing.T) {
	b, err := New()
	require.NoError(t, err)

	recent := []int{0, 1, 2, 3, 4}
	recentSet := make(map[int]bool)
	for _, idx := range recent {
		recentSet[idx] = true
	}

	count := b.Size() - len(recent)
	for run := 0; run < 20; run++ {
		_, picked := b.Pick(count, recent)
		require.Len(t, picked, count)
		for _, idx := range picked {
			assert.False(t, recentSet[idx], "run %d picked recently seen index %d", run, idx)
		}
	}
}

func TestPickTopsUpFromRecent(t *testing.T) {
	b, err := New()
	require.NoError(t, err)

	// Mark everything but two questions as recently seen; a full-size
	// pick must dip back into the recent pool.
	recent := make([]int, 0, b.Size()-2)
	for i := 0; i < b.Size()-2; i++ {
		recent = append(recent, i)
	}

	questions, picked := b.Pick(10, recent)
	assert.Len(t, questions, 10)

	unseen := map[int]bool{b.Size() - 2: true, b.Size() - 1: true}
	for _, idx := range picked[:2] {
		assert.True(t, unseen[idx], "unseen questions must come first, got %d", idx)
	}
}

func TestPickIgnoresOutOfRangeHistory(t *testing.T) {
	b, err := New()
	require.NoError(t, err)

	questions, _ := b.Pick(5, []int{-3, b.Size() + 10, 9999})
	assert.Len(t, questions, 5)
}

func TestPickZeroCount(t *testing.T) {
	b, err := New()
	require.NoError(t, err)

	questions, picked := b.Pick(0, nil)
	assert.Empty(t, questions)
	assert.Empty(t, picked)
}
