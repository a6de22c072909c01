package pages

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/radhanandani03-png/Lotoria/pkg/db/models"
)

// Repository persists builder pages.
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

// List returns all pages, optionally only published ones.
func (r *Repository) List(ctx context.Context, publishedOnly bool) ([]models.CustomPage, error) {
	query := r.db.WithContext(ctx).Order("created_at ASC")
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	var out []models.CustomPage
	if err := query.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.CustomPage, error) {
	var page models.CustomPage
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&page).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *Repository) GetBySlug(ctx context.Context, slug string) (*models.CustomPage, error) {
	var page models.CustomPage
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&page).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *Repository) Create(ctx context.Context, page *models.CustomPage) error {
	return r.db.WithContext(ctx).Create(page).Error
}

func (r *Repository) Update(ctx context.Context, page *models.CustomPage) error {
	return r.db.WithContext(ctx).Save(page).Error
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CustomPage{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
