package gallery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/radhanandani03-png/Lotoria/pkg/db/models"
	pkgerrors "github.com/radhanandani03-png/Lotoria/pkg/errors"
)

type galleryRepo interface {
	List(ctx context.Context) ([]models.GalleryItem, error)
	Create(ctx context.Context, item *models.GalleryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service exposes the public gallery and its admin management.
type Service interface {
	List(ctx context.Context) ([]models.GalleryItem, error)
	Create(ctx context.Context, input Input) (*models.GalleryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Input carries the writable fields of a gallery item.
type Input struct {
	Image    string
	Caption  string
	Category string
}

type service struct {
	repo galleryRepo
}

// NewService builds the gallery service.
func NewService(repo galleryRepo) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("gallery repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]models.GalleryItem, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list gallery")
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, input Input) (*models.GalleryItem, error) {
	if strings.TrimSpace(input.Image) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image is required")
	}
	item := &models.GalleryItem{
		ID:       uuid.New(),
		Image:    strings.TrimSpace(input.Image),
		Caption:  strings.TrimSpace(input.Caption),
		Category: strings.TrimSpace(input.Category),
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create gallery item")
	}
	return item, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "gallery item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete gallery item")
	}
	return nil
}
