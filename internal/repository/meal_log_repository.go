package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/nutrition-coach/internal/domain"
	"github.com/blaisecz/nutrition-coach/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealLogRepository interface {
	Create(ctx context.Context, log *domain.MealLog) error
	// GetLatest returns the most recent log for the user, or (nil, nil) if none exist.
	GetLatest(ctx context.Context, userID uuid.UUID) (*domain.MealLog, error)
	// ListInRange returns logs with start <= logged_at <= end, oldest first.
	ListInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.MealLog, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.MealLogFilter) ([]domain.MealLog, error)
}

type mealLogRepository struct {
	db *gorm.DB
}

func NewMealLogRepository(db *gorm.DB) MealLogRepository {
	return &mealLogRepository{db: db}
}

func (r *mealLogRepository) Create(ctx context.Context, log *domain.MealLog) error {
	// Stored in UTC so range comparisons behave the same on every dialect
	log.LoggedAt = log.LoggedAt.UTC()
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *mealLogRepository) GetLatest(ctx context.Context, userID uuid.UUID) (*domain.MealLog, error) {
	var log domain.MealLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

func (r *mealLogRepository) ListInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.MealLog, error) {
	var logs []domain.MealLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("logged_at >= ? AND logged_at <= ?", start.UTC(), end.UTC()).
		Order("logged_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *mealLogRepository) List(ctx context.Context, userID uuid.UUID, filter domain.MealLogFilter) ([]domain.MealLog, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		Order("id DESC")

	if filter.From != nil {
		query = query.Where("logged_at >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		query = query.Where("logged_at <= ?", filter.To.UTC())
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			loggedAt := cursor.LoggedAt.UTC()
			query = query.Where(
				"(logged_at < ?) OR (logged_at = ? AND id < ?)",
				loggedAt, loggedAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var logs []domain.MealLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
