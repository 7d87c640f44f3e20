package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/nutrition-coach/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DietRequestRepository interface {
	Create(ctx context.Context, req *domain.DietRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DietRequest, error)
}

type dietRequestRepository struct {
	db *gorm.DB
}

func NewDietRequestRepository(db *gorm.DB) DietRequestRepository {
	return &dietRequestRepository{db: db}
}

func (r *dietRequestRepository) Create(ctx context.Context, req *domain.DietRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *dietRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.DietRequest, error) {
	var req domain.DietRequest
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}
