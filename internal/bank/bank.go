package bank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/quizhub/quizhub/internal/domain"
)

//go:embed questions.json
var questionsJSON []byte

// Bank is the static fallback question pool, loaded once at startup.
type Bank struct {
	questions []domain.Question

	mu  sync.Mutex
	rnd *rand.Rand
}

// New loads the embedded question set.
func New() (*Bank, error) {
	var questions []domain.Question
	if err := json.Unmarshal(questionsJSON, &questions); err != nil {
		return nil, fmt.Errorf("failed to load local question bank: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("local question bank is empty")
	}

	return &Bank{
		questions: questions,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Size reports how many questions the bank holds.
func (b *Bank) Size() int {
	return len(b.questions)
}

// Pick selects up to count questions, preferring indices absent from
// recent. When excluding the recent set leaves fewer than count
// candidates, it tops up from the rest of the pool. Returns the chosen
// questions together with their bank indices so the caller can extend
// the user's history.
func (b *Bank) Pick(count int, recent []int) ([]domain.Question, []int) {
	if count <= 0 {
		return nil, nil
	}

	seen := make(map[int]struct{}, len(recent))
	for _, idx := range recent {
		if idx >= 0 && idx < len(b.questions) {
			seen[idx] = struct{}{}
		}
	}

	fresh := make([]int, 0, len(b.questions))
	rest := make([]int, 0, len(seen))
	for i := range b.questions {
		if _, ok := seen[i]; ok {
			rest = append(rest, i)
		} else {
			fresh = append(fresh, i)
		}
	}

	b.mu.Lock()
	b.shuffleLocked(fresh)
	b.shuffleLocked(rest)
	b.mu.Unlock()

	picked := fresh
	if len(picked) < count {
		picked = append(picked, rest...)
	}
	if len(picked) > count {
		picked = picked[:count]
	}

	questions := make([]domain.Question, len(picked))
	for i, idx := range picked {
		questions[i] = b.questions[idx]
	}
	return questions, picked
}

// shuffleLocked permutes idx in place with an unbiased Fisher-Yates pass.
func (b *Bank) shuffleLocked(idx []int) {
	for i := len(idx) - 1; i > 0; i-- {
		j := b.rnd.Intn(i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}
}
