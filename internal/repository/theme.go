package repository

import (
	"context"
	"errors"

	"flatterer/internal/models"

	"gorm.io/gorm"
)

// ThemeRepository defines persistence operations for page themes.
type ThemeRepository interface {
	GetByComplimentee(ctx context.Context, complimenteeID uint) (*models.Theme, error)
	Create(ctx context.Context, theme *models.Theme) error
	Update(ctx context.Context, theme *models.Theme) error
}

type themeRepository struct {
	db *gorm.DB
}

// NewThemeRepository returns a new ThemeRepository implementation.
func NewThemeRepository(db *gorm.DB) ThemeRepository {
	return &themeRepository{db: db}
}

// GetByComplimentee returns the first theme for the complimentee, or nil.
// The at-most-one invariant is enforced here by first-match lookup, not by
// a unique constraint.
func (r *themeRepository) GetByComplimentee(ctx context.Context, complimenteeID uint) (*models.Theme, error) {
	var theme models.Theme
	err := r.db.WithContext(ctx).
		Where("complimentee_id = ?", complimenteeID).
		Order("id ASC").
		First(&theme).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &theme, nil
}

func (r *themeRepository) Create(ctx context.Context, theme *models.Theme) error {
	if err := r.db.WithContext(ctx).Create(theme).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *themeRepository) Update(ctx context.Context, theme *models.Theme) error {
	if err := r.db.WithContext(ctx).Save(theme).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
