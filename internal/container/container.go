package container

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/quizhub/quizhub/internal/auth"
	"github.com/quizhub/quizhub/internal/bank"
	"github.com/quizhub/quizhub/internal/config"
	"github.com/quizhub/quizhub/internal/game"
	"github.com/quizhub/quizhub/internal/quiz"
	"github.com/quizhub/quizhub/internal/trivia"
	"github.com/quizhub/quizhub/internal/user"
)

type Container struct {
	UserContainer *user.UserContainer
	QuizContainer *quiz.QuizContainer
	GameContainer *game.GameContainer
}

func New(ctx context.Context) (*Container, error) {
	config.Init()
	auth.Init()

	if err := config.Connect(ctx, config.DatabaseDSN()); err != nil {
		return nil, err
	}

	questionBank, err := bank.New()
	if err != nil {
		return nil, err
	}

	client := trivia.NewClient(config.TriviaAPIURL(), config.TriviaTimeout())

	var store quiz.Store
	if addr := config.RedisAddr(); addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: config.RedisPassword(),
			DB:       config.RedisDB(),
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		store = quiz.NewRedisStore(redisClient, config.QuizTTL())
		config.Logger().Info("using redis quiz session store")
	} else {
		store = quiz.NewMemoryStore(config.QuizTTL())
		config.Logger().Info("using in-memory quiz session store")
	}

	gameContainer := game.NewGameContainer(config.DB)
	userContainer := user.NewUserContainer(config.DB, gameContainer.Service)
	quizContainer := quiz.NewQuizContainer(store, client, questionBank, userContainer.Service, gameContainer.Service)

	return &Container{
		UserContainer: userContainer,
		QuizContainer: quizContainer,
		GameContainer: gameContainer,
	}, nil
}
