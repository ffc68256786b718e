package domain

import "errors"

var (
	// ErrProviderUnavailable is returned when the external trivia API
	// cannot supply questions. Callers recover by falling back to the
	// local bank; it never reaches a client.
	ErrProviderUnavailable = errors.New("trivia provider unavailable")
	// ErrQuizNotFound is returned when a quiz id is unknown, expired or
	// already submitted.
	ErrQuizNotFound = errors.New("quiz not found or expired")
	// ErrMalformedSubmission is returned when a submitted answer
	// references a question index outside the quiz.
	ErrMalformedSubmission = errors.New("answer references an invalid question")
	// ErrUserNotFound is returned when the authenticated user no longer exists.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned on signup when the username or email is taken.
	ErrUserExists = errors.New("username or email already in use")
	// ErrCredentials is returned on login with a bad username or password.
	ErrCredentials = errors.New("invalid credentials")
)
