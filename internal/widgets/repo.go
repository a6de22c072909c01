package widgets

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/radhanandani03-png/Lotoria/pkg/db/models"
)

// Repository persists home screen widgets.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds the repository to the provided DB handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx scopes the repository to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// List returns widgets in display order.
func (r *Repository) List(ctx context.Context) ([]models.HomeWidget, error) {
	var out []models.HomeWidget
	err := r.db.WithContext(ctx).
		Order("position ASC, created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MaxPosition returns the highest position in use, -1 when empty.
func (r *Repository) MaxPosition(ctx context.Context) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).
		Model(&models.HomeWidget{}).
		Select("MAX(position)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.HomeWidget, error) {
	var widget models.HomeWidget
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&widget).Error
	if err != nil {
		return nil, err
	}
	return &widget, nil
}

func (r *Repository) Create(ctx context.Context, widget *models.HomeWidget) error {
	return r.db.WithContext(ctx).Create(widget).Error
}

func (r *Repository) Update(ctx context.Context, widget *models.HomeWidget) error {
	return r.db.WithContext(ctx).Save(widget).Error
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.HomeWidget{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
