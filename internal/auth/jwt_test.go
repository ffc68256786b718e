package auth

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "a-long-and-sufficiently-secret-test-key"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		os.Unsetenv("JWT_SECRET")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Init() should panic when JWT_SECRET is empty")
			}
		}()

		Init()
	})

	t.Run("ValidSecret", func(t *testing.T) {
		os.Setenv("JWT_SECRET", testSecret)
		Init()
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	Init()

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := GenerateJWT("user-123", "alice", time.Minute*5)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		claims, err := ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT failed unexpectedly: %v", err)
		}

		if claims.UserID != "user-123" {
			t.Errorf("wrong UserID: want %q, got %q", "user-123", claims.UserID)
		}
		if claims.Username != "alice" {
			t.Errorf("wrong Username: want %q, got %q", "alice", claims.Username)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := GenerateJWT("user-123", "alice", -time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = ValidateJWT(tokenStr)
		if err == nil {
			t.Fatal("ValidateJWT should fail for an expired token")
		}
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("wrong error for expired token: want %v, got %v", jwt.ErrTokenExpired, err)
		}
	})

	t.Run("TamperedSignature", func(t *testing.T) {
		tokenStr, err := GenerateJWT("user-123", "alice", time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		original := jwtSecret
		jwtSecret = []byte("a-different-fake-secret")
		_, err = ValidateJWT(tokenStr)
		jwtSecret = original

		if err == nil {
			t.Fatal("ValidateJWT should fail with a wrong signing key")
		}
	})
}
