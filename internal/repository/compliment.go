package repository

import (
	"context"

	"flatterer/internal/models"

	"gorm.io/gorm"
)

// ComplimentRepository defines persistence operations for compliments.
type ComplimentRepository interface {
	Create(ctx context.Context, compliment *models.Compliment) error
	// ListApprovedForGender returns approved compliments in the given gender
	// pool plus the "Any" pool, unshuffled.
	ListApprovedForGender(ctx context.Context, gender string) ([]models.Compliment, error)
	ListByComplimentee(ctx context.Context, complimenteeID uint) ([]models.Compliment, error)
	// ListByGender returns every compliment with the label regardless of
	// approval. Used by the control panel buckets.
	ListByGender(ctx context.Context, gender string) ([]models.Compliment, error)
	// ListPersonal returns every complimentee-scoped compliment (gender null).
	ListPersonal(ctx context.Context) ([]models.Compliment, error)
	ListUnapproved(ctx context.Context) ([]models.Compliment, error)
	// ApproveByIDs sets approved on all matching rows; unknown ids fall out
	// of the match set silently.
	ApproveByIDs(ctx context.Context, ids []uint) (int64, error)
	DeleteByIDs(ctx context.Context, ids []uint) (int64, error)
}

type complimentRepository struct {
	db *gorm.DB
}

// NewComplimentRepository returns a new ComplimentRepository implementation.
func NewComplimentRepository(db *gorm.DB) ComplimentRepository {
	return &complimentRepository{db: db}
}

func (r *complimentRepository) Create(ctx context.Context, compliment *models.Compliment) error {
	if err := r.db.WithContext(ctx).Create(compliment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *complimentRepository) ListApprovedForGender(ctx context.Context, gender string) ([]models.Compliment, error) {
	var compliments []models.Compliment
	err := r.db.WithContext(ctx).
		Where("approved = ?", true).
		Where("gender = ? OR gender = ?", gender, models.GenderAny).
		Find(&compliments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return compliments, nil
}

func (r *complimentRepository) ListByComplimentee(ctx context.Context, complimenteeID uint) ([]models.Compliment, error) {
	var compliments []models.Compliment
	err := r.db.WithContext(ctx).
		Where("complimentee_id = ?", complimenteeID).
		Order("id ASC").
		Find(&compliments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return compliments, nil
}

func (r *complimentRepository) ListByGender(ctx context.Context, gender string) ([]models.Compliment, error) {
	var compliments []models.Compliment
	err := r.db.WithContext(ctx).
		Where("gender = ?", gender).
		Order("id ASC").
		Find(&compliments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return compliments, nil
}

func (r *complimentRepository) ListPersonal(ctx context.Context) ([]models.Compliment, error) {
	var compliments []models.Compliment
	err := r.db.WithContext(ctx).
		Where("gender IS NULL").
		Order("id ASC").
		Find(&compliments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return compliments, nil
}

func (r *complimentRepository) ListUnapproved(ctx context.Context) ([]models.Compliment, error) {
	var compliments []models.Compliment
	err := r.db.WithContext(ctx).
		Where("approved = ?", false).
		Order("id ASC").
		Find(&compliments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return compliments, nil
}

func (r *complimentRepository) ApproveByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&models.Compliment{}).
		Where("id IN ?", ids).
		Update("approved", true)
	if res.Error != nil {
		return 0, models.NewInternalError(res.Error)
	}
	return res.RowsAffected, nil
}

func (r *complimentRepository) DeleteByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Delete(&models.Compliment{}, ids)
	if res.Error != nil {
		return 0, models.NewInternalError(res.Error)
	}
	return res.RowsAffected, nil
}
