package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/nutrition-coach/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LifestyleRepository interface {
	// GetByUserID returns (nil, nil) when the user has not set a schedule yet.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.LifestyleSchedule, error)
	Upsert(ctx context.Context, schedule *domain.LifestyleSchedule) error
}

type lifestyleRepository struct {
	db *gorm.DB
}

func NewLifestyleRepository(db *gorm.DB) LifestyleRepository {
	return &lifestyleRepository{db: db}
}

func (r *lifestyleRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.LifestyleSchedule, error) {
	var schedule domain.LifestyleSchedule
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

// Upsert writes all six timings, clearing the ones that are nil.
func (r *lifestyleRepository) Upsert(ctx context.Context, schedule *domain.LifestyleSchedule) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"wake_time", "breakfast_time", "lunch_time",
			"snack_time", "dinner_time", "sleep_time", "updated_at",
		}),
	}).Create(schedule).Error
}
