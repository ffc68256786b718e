package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quizhub/quizhub/internal/domain"
)

// RedisStore keeps quiz sessions in Redis. Expiry rides on the native
// key TTL and TakeAndInvalidate maps onto GETDEL, which gives the
// exactly-once consumption guarantee across processes for free.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, userID string, questions []domain.Question) (string, error) {
	now := time.Now()

	for {
		createdAt := now
		id := quizID(userID, createdAt)

		session := &Session{
			ID:        id,
			UserID:    userID,
			Questions: questions,
			CreatedAt: createdAt,
		}
		payload, err := json.Marshal(session)
		if err != nil {
			return "", fmt.Errorf("failed to encode quiz session: %w", err)
		}

		ok, err := s.client.SetNX(ctx, s.key(id), payload, s.ttl).Result()
		if err != nil {
			return "", fmt.Errorf("failed to store quiz session: %w", err)
		}
		if ok {
			return id, nil
		}
		now = now.Add(time.Millisecond)
	}
}

func (s *RedisStore) TakeAndInvalidate(ctx context.Context, quizID string) (*Session, error) {
	payload, err := s.client.GetDel(ctx, s.key(quizID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrQuizNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to take quiz session: %w", err)
	}

	var session Session
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		return nil, fmt.Errorf("failed to decode quiz session: %w", err)
	}
	return &session, nil
}

// SweepExpired is a no-op: Redis evicts expired keys itself.
func (s *RedisStore) SweepExpired(context.Context, time.Duration) int {
	return 0
}

func (s *RedisStore) key(quizID string) string {
	return "quiz:active:" + quizID
}
