package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/radhanandani03-png/Lotoria/internal/pricing"
	"github.com/radhanandani03-png/Lotoria/pkg/db/models"
	pkgerrors "github.com/radhanandani03-png/Lotoria/pkg/errors"
	"github.com/radhanandani03-png/Lotoria/pkg/logger"
)

// Service exposes catalog reads for the storefront and admin CRUD.
type Service interface {
	ListServices(ctx context.Context, category string) ([]models.Service, error)
	GetService(ctx context.Context, id uuid.UUID) (*models.Service, error)
	CreateService(ctx context.Context, input ServiceInput) (*models.Service, error)
	UpdateService(ctx context.Context, id uuid.UUID, input ServiceInput) (*models.Service, error)
	DeleteService(ctx context.Context, id uuid.UUID) error

	ListProducts(ctx context.Context, category string) ([]models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	ListDeals(ctx context.Context) ([]models.Deal, error)
	GetDeal(ctx context.Context, id uuid.UUID) (*models.Deal, error)
	CreateDeal(ctx context.Context, input DealInput) (*models.Deal, error)
	UpdateDeal(ctx context.Context, id uuid.UUID, input DealInput) (*models.Deal, error)
	DeleteDeal(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo *Repository
	logg *logger.Logger
}

// NewService builds the catalog service.
func NewService(repo *Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo, logg: logg}, nil
}

// ServiceInput carries the writable fields of a salon service.
type ServiceInput struct {
	Name        string
	Price       int64
	Description string
	Image       string
	Category    string
	Offer       *string
}

func (in ServiceInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "service name is required")
	}
	if in.Price < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative")
	}
	return nil
}

// ProductInput carries the writable fields of a retail product.
type ProductInput struct {
	Name          string
	Price         int64
	DiscountPrice *int64
	Description   string
	Category      string
	Image         string
	Rating        float64
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	if in.Price < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative")
	}
	if in.DiscountPrice != nil && (*in.DiscountPrice < 0 || *in.DiscountPrice > in.Price) {
		return pkgerrors.New(pkgerrors.CodeValidation, "discount price must be between 0 and the list price")
	}
	if in.Rating < 0 || in.Rating > 5 {
		return pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 0 and 5")
	}
	return nil
}

// DealInput carries the writable fields of a deal. PercentageOff is
// always derived, never taken from the caller.
type DealInput struct {
	Title         string
	Description   string
	OriginalPrice int64
	OfferPrice    int64
	Image         string
	ValidUntil    *time.Time
}

func (in DealInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "deal title is required")
	}
	if in.OriginalPrice <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "original price must be positive")
	}
	if in.OfferPrice < 0 || in.OfferPrice > in.OriginalPrice {
		return pkgerrors.New(pkgerrors.CodeValidation, "offer price must be between 0 and the original price")
	}
	return nil
}

func (s *service) ListServices(ctx context.Context, category string) ([]models.Service, error) {
	out, err := s.repo.ListServices(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list services")
	}
	return out, nil
}

func (s *service) GetService(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	svc, err := s.repo.GetService(ctx, id)
	if err != nil {
		return nil, notFoundOrDependency(err, "service")
	}
	return svc, nil
}

func (s *service) CreateService(ctx context.Context, input ServiceInput) (*models.Service, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	svc := &models.Service{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
		Category:    strings.TrimSpace(input.Category),
		Offer:       input.Offer,
	}
	if err := s.repo.CreateService(ctx, svc); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create service")
	}
	return svc, nil
}

func (s *service) UpdateService(ctx context.Context, id uuid.UUID, input ServiceInput) (*models.Service, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	svc, err := s.repo.GetService(ctx, id)
	if err != nil {
		return nil, notFoundOrDependency(err, "service")
	}
	svc.Name = strings.TrimSpace(input.Name)
	svc.Price = input.Price
	svc.Description = input.Description
	svc.Image = input.Image
	svc.Category = strings.TrimSpace(input.Category)
	svc.Offer = input.Offer
	if err := s.repo.UpdateService(ctx, svc); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update service")
	}
	return svc, nil
}

func (s *service) DeleteService(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetService(ctx, id); err != nil {
		return notFoundOrDependency(err, "service")
	}
	if err := s.repo.DeleteService(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete service")
	}
	return nil
}

func (s *service) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	out, err := s.repo.ListProducts(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return out, nil
}

func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, notFoundOrDependency(err, "product")
	}
	return product, nil
}

func (s *service) GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	out, err := s.repo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load products")
	}
	return out, nil
}

func (s *service) CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	product := &models.Product{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(input.Name),
		Price:         input.Price,
		DiscountPrice: input.DiscountPrice,
		Description:   input.Description,
		Category:      strings.TrimSpace(input.Category),
		Image:         input.Image,
		Rating:        input.Rating,
	}
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	return product, nil
}

func (s *service) UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*models.Product, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, notFoundOrDependency(err, "product")
	}
	product.Name = strings.TrimSpace(input.Name)
	product.Price = input.Price
	product.DiscountPrice = input.DiscountPrice
	product.Description = input.Description
	product.Category = strings.TrimSpace(input.Category)
	product.Image = input.Image
	product.Rating = input.Rating
	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}
	return product, nil
}

func (s *service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetProduct(ctx, id); err != nil {
		return notFoundOrDependency(err, "product")
	}
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	return nil
}

func (s *service) ListDeals(ctx context.Context) ([]models.Deal, error) {
	out, err := s.repo.ListDeals(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list deals")
	}
	return out, nil
}

func (s *service) GetDeal(ctx context.Context, id uuid.UUID) (*models.Deal, error) {
	deal, err := s.repo.GetDeal(ctx, id)
	if err != nil {
		return nil, notFoundOrDependency(err, "deal")
	}
	return deal, nil
}

func (s *service) CreateDeal(ctx context.Context, input DealInput) (*models.Deal, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	deal := &models.Deal{
		ID:            uuid.New(),
		Title:         strings.TrimSpace(input.Title),
		Description:   input.Description,
		OriginalPrice: input.OriginalPrice,
		OfferPrice:    input.OfferPrice,
		PercentageOff: pricing.DealPercentageOff(input.OriginalPrice, input.OfferPrice),
		Image:         input.Image,
		ValidUntil:    input.ValidUntil,
	}
	if err := s.repo.CreateDeal(ctx, deal); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create deal")
	}
	return deal, nil
}

func (s *service) UpdateDeal(ctx context.Context, id uuid.UUID, input DealInput) (*models.Deal, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	deal, err := s.repo.GetDeal(ctx, id)
	if err != nil {
		return nil, notFoundOrDependency(err, "deal")
	}
	deal.Title = strings.TrimSpace(input.Title)
	deal.Description = input.Description
	deal.OriginalPrice = input.OriginalPrice
	deal.OfferPrice = input.OfferPrice
	deal.PercentageOff = pricing.DealPercentageOff(input.OriginalPrice, input.OfferPrice)
	deal.Image = input.Image
	deal.ValidUntil = input.ValidUntil
	if err := s.repo.UpdateDeal(ctx, deal); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update deal")
	}
	return deal, nil
}

func (s *service) DeleteDeal(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetDeal(ctx, id); err != nil {
		return notFoundOrDependency(err, "deal")
	}
	if err := s.repo.DeleteDeal(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete deal")
	}
	return nil
}

func notFoundOrDependency(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, what+" not found")
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load "+what)
}
