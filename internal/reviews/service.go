package reviews

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

type reviewRepo interface {
	List(ctx context.Context) ([]models.Review, error)
	Create(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service exposes the public review wall and admin moderation.
type Service interface {
	List(ctx context.Context) ([]models.Review, error)
	Create(ctx context.Context, input Input) (*models.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Input carries the writable fields of a review.
type Input struct {
	AuthorName string
	Rating     int
	Comment    string
}

func (in Input) validate() error {
	if strings.TrimSpace(in.AuthorName) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "author name is required")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}
	return nil
}

type service struct {
	repo reviewRepo
}

// NewService builds the review service.
func NewService(repo reviewRepo) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("review repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]models.Review, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list reviews")
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, input Input) (*models.Review, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	review := &models.Review{
		ID:         uuid.New(),
		AuthorName: strings.TrimSpace(input.AuthorName),
		Rating:     input.Rating,
		Comment:    strings.TrimSpace(input.Comment),
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create review")
	}
	return review, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "review not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete review")
	}
	return nil
}
