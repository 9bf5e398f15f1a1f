package repository

import (
	"context"
	"errors"

	"flatterer/internal/models"

	"gorm.io/gorm"
)

// ComplimenteeRepository defines persistence operations for complimentees.
type ComplimenteeRepository interface {
	Create(ctx context.Context, complimentee *models.Complimentee) error
	GetBySlug(ctx context.Context, slug string) (*models.Complimentee, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Complimentee, error)
}

type complimenteeRepository struct {
	db *gorm.DB
}

// NewComplimenteeRepository returns a new ComplimenteeRepository implementation.
func NewComplimenteeRepository(db *gorm.DB) ComplimenteeRepository {
	return &complimenteeRepository{db: db}
}

func (r *complimenteeRepository) Create(ctx context.Context, complimentee *models.Complimentee) error {
	if err := r.db.WithContext(ctx).Create(complimentee).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("This url is already taken!")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *complimenteeRepository) GetBySlug(ctx context.Context, slug string) (*models.Complimentee, error) {
	var complimentee models.Complimentee
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&complimentee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &complimentee, nil
}

// ListByOwner returns the owner's complimentees in insertion order with
// their themes preloaded, matching the listing page.
func (r *complimenteeRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Complimentee, error) {
	var complimentees []models.Complimentee
	err := r.db.WithContext(ctx).
		Preload("Theme").
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&complimentees).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return complimentees, nil
}
