package user

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"github.com/quizhub/quizhub/internal/config"
	"github.com/quizhub/quizhub/internal/domain"
)

// maxRecentQuestions caps the per-user recently-seen history.
const maxRecentQuestions = 30

type UserService interface {
	Signup(ctx context.Context, req SignupRequest) (*User, error)
	Login(ctx context.Context, req LoginRequest) (*User, error)
	GetProfile(ctx context.Context, userID string) (*Profile, error)

	RecentQuestions(ctx context.Context, userID string) ([]int, error)
	PushRecentQuestions(ctx context.Context, userID string, indices []int) error
}

type userService struct {
	repo UserRepository
}

func NewService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Signup(ctx context.Context, req SignupRequest) (*User, error) {
	log := config.WithContext(ctx)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("username, email and password are required")
	}

	for _, value := range []string{req.Username, req.Email} {
		existing, err := s.repo.GetByUsernameOrEmail(value)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrUserExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(u); err != nil {
		log.WithError(err).Error("failed to create user")
		return nil, err
	}

	log.WithField("user_id", u.ID.String()).Info("user signed up")
	return u, nil
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (*User, error) {
	u, err := s.repo.GetByUsernameOrEmail(req.UsernameOrEmail)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrCredentials
	}
	return u, nil
}

func (s *userService) GetProfile(_ context.Context, userID string) (*Profile, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}

	return &Profile{
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}, nil
}

func (s *userService) RecentQuestions(_ context.Context, userID string) ([]int, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if len(u.RecentQuestions) == 0 {
		return nil, nil
	}

	var recent []int
	if err := json.Unmarshal(u.RecentQuestions, &recent); err != nil {
		return nil, fmt.Errorf("corrupt recent question history: %w", err)
	}
	return recent, nil
}

// PushRecentQuestions prepends the freshly served indices and trims the
// history to the newest maxRecentQuestions entries.
func (s *userService) PushRecentQuestions(ctx context.Context, userID string, indices []int) error {
	recent, err := s.RecentQuestions(ctx, userID)
	if err != nil {
		return err
	}

	updated := append(append([]int{}, indices...), recent...)
	if len(updated) > maxRecentQuestions {
		updated = updated[:maxRecentQuestions]
	}

	payload, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("failed to encode recent question history: %w", err)
	}
	return s.repo.UpdateRecentQuestions(userID, datatypes.JSON(payload))
}
