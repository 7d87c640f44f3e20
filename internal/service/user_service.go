package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blaisecz/nutrition-coach/internal/domain"
	"github.com/blaisecz/nutrition-coach/internal/logger"
	"github.com/blaisecz/nutrition-coach/internal/repository"
	"github.com/google/uuid"
)

// UserService registers users and resolves them by ID.
type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Create stores a new user. Emails compare case-insensitively and the timezone
// must be an IANA name, since every day boundary is computed in it.
func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	email := normalizeEmail(req.Email)
	timezone := strings.TrimSpace(req.Timezone)
	if _, err := time.LoadLocation(timezone); err != nil || timezone == "" {
		return nil, fmt.Errorf("%w: unknown timezone %q", domain.ErrInvalidInput, req.Timezone)
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateUser
	}

	user := &domain.User{
		ID:       uuid.New(),
		Email:    email,
		FullName: strings.TrimSpace(req.FullName),
		Timezone: timezone,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent signup for the same email
		if errors.Is(err, domain.ErrDuplicateUser) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	logger.Debug("user created", "user_id", user.ID, "timezone", user.Timezone)
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
