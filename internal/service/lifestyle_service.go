package service

import (
	"context"
	"fmt"

	"github.com/blaisecz/nutrition-coach/internal/domain"
	"github.com/blaisecz/nutrition-coach/internal/repository"
	"github.com/google/uuid"
)

// LifestyleService reads and replaces a user's daily schedule.
type LifestyleService interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.LifestyleResponse, error)
	Update(ctx context.Context, userID uuid.UUID, req *domain.UpdateLifestyleRequest) (*domain.LifestyleResponse, error)
}

type lifestyleService struct {
	repo     repository.LifestyleRepository
	userRepo repository.UserRepository
}

func NewLifestyleService(repo repository.LifestyleRepository, userRepo repository.UserRepository) LifestyleService {
	return &lifestyleService{repo: repo, userRepo: userRepo}
}

func (s *lifestyleService) Get(ctx context.Context, userID uuid.UUID) (*domain.LifestyleResponse, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	schedule, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return lifestyleResponse(userID, schedule), nil
}

func (s *lifestyleService) Update(ctx context.Context, userID uuid.UUID, req *domain.UpdateLifestyleRequest) (*domain.LifestyleResponse, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	schedule := &domain.LifestyleSchedule{UserID: userID}
	fields := []struct {
		name  string
		value *string
		dst   **domain.ClockTime
	}{
		{"wake_time", req.WakeTime, &schedule.WakeTime},
		{"breakfast_time", req.BreakfastTime, &schedule.BreakfastTime},
		{"lunch_time", req.LunchTime, &schedule.LunchTime},
		{"snack_time", req.SnackTime, &schedule.SnackTime},
		{"dinner_time", req.DinnerTime, &schedule.DinnerTime},
		{"sleep_time", req.SleepTime, &schedule.SleepTime},
	}
	for _, f := range fields {
		if f.value == nil || *f.value == "" {
			continue
		}
		clock := domain.ParseClock(*f.value)
		if clock == nil {
			return nil, fmt.Errorf("%w: %s must be HH:MM", domain.ErrInvalidInput, f.name)
		}
		*f.dst = clock
	}

	if err := s.repo.Upsert(ctx, schedule); err != nil {
		return nil, err
	}

	stored, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return lifestyleResponse(userID, stored), nil
}

func (s *lifestyleService) ensureUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}

func lifestyleResponse(userID uuid.UUID, schedule *domain.LifestyleSchedule) *domain.LifestyleResponse {
	resp := &domain.LifestyleResponse{
		UserID:          userID,
		LifestyleTiming: schedule.Timing(),
		SleepAnalysis:   domain.SleepAnalysis{SleepStatus: domain.SleepStatusUnknown},
	}
	if schedule != nil {
		resp.SleepAnalysis = AnalyzeSleep(schedule.WakeTime, schedule.SleepTime)
		updatedAt := schedule.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
