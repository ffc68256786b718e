package quiz

import (
	"context"
	"sync"
	"time"

	"github.com/quizhub/quizhub/internal/domain"
)

// MemoryStore is the single-process Store: a mutex-guarded map swept
// opportunistically on every Create, so abandoned quizzes cannot grow
// memory without bound.
type MemoryStore struct {
	maxAge time.Duration
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewMemoryStore builds a store whose entries expire after maxAge.
func NewMemoryStore(maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		maxAge:   maxAge,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// NewMemoryStoreWithClock is for tests that need deterministic time.
func NewMemoryStoreWithClock(maxAge time.Duration, now func() time.Time) *MemoryStore {
	store := NewMemoryStore(maxAge)
	store.now = now
	return store
}

func (s *MemoryStore) Create(_ context.Context, userID string, questions []domain.Question) (string, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked(now, s.maxAge)

	// Ids are millisecond-derived; bump forward on the rare collision
	// instead of overwriting a live quiz.
	createdAt := now
	id := quizID(userID, createdAt)
	for _, exists := s.sessions[id]; exists; _, exists = s.sessions[id] {
		createdAt = createdAt.Add(time.Millisecond)
		id = quizID(userID, createdAt)
	}

	s.sessions[id] = &Session{
		ID:        id,
		UserID:    userID,
		Questions: questions,
		CreatedAt: now,
	}
	return id, nil
}

func (s *MemoryStore) TakeAndInvalidate(_ context.Context, quizID string) (*Session, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[quizID]
	if !ok {
		return nil, domain.ErrQuizNotFound
	}
	delete(s.sessions, quizID)

	// The sweep only runs on Create, so an expired entry can still be
	// present here. It must not be scoreable.
	if now.Sub(session.CreatedAt) >= s.maxAge {
		return nil, domain.ErrQuizNotFound
	}
	return session, nil
}

func (s *MemoryStore) SweepExpired(_ context.Context, maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now(), maxAge)
}

func (s *MemoryStore) sweepLocked(now time.Time, maxAge time.Duration) int {
	removed := 0
	for id, session := range s.sessions {
		if now.Sub(session.CreatedAt) >= maxAge {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
