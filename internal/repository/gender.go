package repository

import (
	"context"
	"errors"

	"flatterer/internal/models"

	"gorm.io/gorm"
)

// GenderRepository defines persistence operations for gender labels.
type GenderRepository interface {
	Create(ctx context.Context, gender *models.Gender) error
	GetByLabel(ctx context.Context, label string) (*models.Gender, error)
	List(ctx context.Context) ([]models.Gender, error)
}

type genderRepository struct {
	db *gorm.DB
}

// NewGenderRepository returns a new GenderRepository implementation.
func NewGenderRepository(db *gorm.DB) GenderRepository {
	return &genderRepository{db: db}
}

func (r *genderRepository) Create(ctx context.Context, gender *models.Gender) error {
	if err := r.db.WithContext(ctx).Create(gender).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("This gender already exists!")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *genderRepository) GetByLabel(ctx context.Context, label string) (*models.Gender, error) {
	var gender models.Gender
	if err := r.db.WithContext(ctx).Where("label = ?", label).First(&gender).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &gender, nil
}

func (r *genderRepository) List(ctx context.Context) ([]models.Gender, error) {
	var genders []models.Gender
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&genders).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return genders, nil
}
