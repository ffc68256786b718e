package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Init loads environment configuration. A missing .env file is fine;
// deployed environments inject real variables.
func Init() {
	_ = godotenv.Load()
	initLogger()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func Port() string {
	return getEnv("PORT", "8080")
}

func DatabaseDSN() string {
	return os.Getenv("DATABASE_DSN")
}

func RedisAddr() string {
	return os.Getenv("REDIS_ADDR")
}

func RedisPassword() string {
	return os.Getenv("REDIS_PASSWORD")
}

func RedisDB() int {
	n, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return 0
	}
	return n
}

func TriviaAPIURL() string {
	return getEnv("TRIVIA_API_URL", "https://opentdb.com")
}

func CorsOrigin() string {
	return getEnv("CORS_ORIGIN", "*")
}

// TriviaTimeout bounds a single call to the trivia provider.
func TriviaTimeout() time.Duration {
	return duration(getEnv("TRIVIA_TIMEOUT", "5s"), 5*time.Second)
}

// QuizTTL is how long an unanswered quiz stays retrievable.
func QuizTTL() time.Duration {
	return duration(getEnv("QUIZ_TTL", "1h"), time.Hour)
}

func duration(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
