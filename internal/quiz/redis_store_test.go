package quiz

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizhub/quizhub/internal/domain"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStore(client, ttl), mr
}

func TestRedisStoreTakeExactlyOnce(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	id, err := store.Create(ctx, "user-1", testQuestions())
	require.NoError(t, err)
	require.True(t, mr.Exists("quiz:active:"+id))

	session, err := store.TakeAndInvalidate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, "C", session.Questions[1].Answer)
	assert.False(t, mr.Exists("quiz:active:"+id))

	_, err = store.TakeAndInvalidate(ctx, id)
	assert.ErrorIs(t, err, domain.ErrQuizNotFound)
}

func TestRedisStoreExpiry(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	id, err := store.Create(ctx, "user-1", testQuestions())
	require.NoError(t, err)

	mr.FastForward(time.Hour + time.Second)

	_, err = store.TakeAndInvalidate(ctx, id)
	assert.ErrorIs(t, err, domain.ErrQuizNotFound)
}

func TestRedisStoreCollisionBumpsID(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	first, err := store.Create(ctx, "user-1", testQuestions())
	require.NoError(t, err)
	second, err := store.Create(ctx, "user-1", testQuestions())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
