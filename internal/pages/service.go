package pages

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/radhanandani03-png/Lotoria/pkg/db/models"
	pkgerrors "github.com/radhanandani03-png/Lotoria/pkg/errors"
	"github.com/radhanandani03-png/Lotoria/pkg/types"
)

type pageRepo interface {
	List(ctx context.Context, publishedOnly bool) ([]models.CustomPage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.CustomPage, error)
	GetBySlug(ctx context.Context, slug string) (*models.CustomPage, error)
	Create(ctx context.Context, page *models.CustomPage) error
	Update(ctx context.Context, page *models.CustomPage) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service exposes the page builder and public page rendering.
type Service interface {
	ListPublished(ctx context.Context) ([]models.CustomPage, error)
	ListAll(ctx context.Context) ([]models.CustomPage, error)
	GetBySlug(ctx context.Context, slug string) (*models.CustomPage, error)
	Create(ctx context.Context, input Input) (*models.CustomPage, error)
	Update(ctx context.Context, id uuid.UUID, input Input) (*models.CustomPage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Input carries the writable fields of a builder page.
type Input struct {
	Title     string
	Slug      string
	Blocks    types.PageBlocks
	Published bool
}

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify normalizes a title or slug into a url-safe identifier.
func Slugify(value string) string {
	out := strings.ToLower(strings.TrimSpace(value))
	out = slugCleaner.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "page title is required")
	}
	for i, block := range in.Blocks {
		if !block.Type.IsValid() {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("block %d has invalid type %q", i, block.Type)).
				WithDetails(map[string]any{"index": i, "type": string(block.Type)})
		}
	}
	return nil
}

type service struct {
	repo pageRepo
}

// NewService builds the page service.
func NewService(repo pageRepo) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("page repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListPublished(ctx context.Context) ([]models.CustomPage, error) {
	out, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list pages")
	}
	return out, nil
}

func (s *service) ListAll(ctx context.Context) ([]models.CustomPage, error) {
	out, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list pages")
	}
	return out, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*models.CustomPage, error) {
	page, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "page not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load page")
	}
	if !page.Published {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "page not found")
	}
	return page, nil
}

func (s *service) Create(ctx context.Context, input Input) (*models.CustomPage, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	slug := Slugify(input.Slug)
	if slug == "" {
		slug = Slugify(input.Title)
	}
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "page slug is required")
	}
	page := &models.CustomPage{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(input.Title),
		Slug:      slug,
		Blocks:    input.Blocks,
		Published: input.Published,
	}
	if page.Blocks == nil {
		page.Blocks = types.PageBlocks{}
	}
	if err := s.repo.Create(ctx, page); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "page slug already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create page")
	}
	return page, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input Input) (*models.CustomPage, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	page, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "page not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load page")
	}
	page.Title = strings.TrimSpace(input.Title)
	if slug := Slugify(input.Slug); slug != "" {
		page.Slug = slug
	}
	page.Blocks = input.Blocks
	if page.Blocks == nil {
		page.Blocks = types.PageBlocks{}
	}
	page.Published = input.Published
	if err := s.repo.Update(ctx, page); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "page slug already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update page")
	}
	return page, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "page not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete page")
	}
	return nil
}
