package coupons

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/radhanandani03-png/Lotoria/internal/pricing"
	"github.com/radhanandani03-png/Lotoria/pkg/db/models"
	"github.com/radhanandani03-png/Lotoria/pkg/enums"
	pkgerrors "github.com/radhanandani03-png/Lotoria/pkg/errors"
)

// Service exposes coupon lookups for pricing and admin CRUD.
type Service interface {
	List(ctx context.Context) ([]models.Coupon, error)
	// Resolve finds the coupon by its exact, case-sensitive code.
	// A miss comes back as a COUPON_NOT_FOUND error.
	Resolve(ctx context.Context, code string) (pricing.Coupon, error)
	Create(ctx context.Context, input Input) (*models.Coupon, error)
	Update(ctx context.Context, id uuid.UUID, input Input) (*models.Coupon, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo *Repository
}

// NewService builds the coupon service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("coupon repository required")
	}
	return &service{repo: repo}, nil
}

// Input carries the writable fields of a coupon.
type Input struct {
	Code         string
	DiscountType enums.DiscountType
	Value        int64
	ApplicableTo enums.CouponScope
	TargetID     *uuid.UUID
	TargetName   *string
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Code) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "coupon code is required")
	}
	if !in.DiscountType.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid discount type")
	}
	if !in.ApplicableTo.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid coupon scope")
	}
	if in.Value <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "discount value must be positive")
	}
	if in.DiscountType == enums.DiscountTypePercentage && in.Value > 100 {
		return pkgerrors.New(pkgerrors.CodeValidation, "percentage discount cannot exceed 100")
	}
	return nil
}

func (s *service) List(ctx context.Context) ([]models.Coupon, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list coupons")
	}
	return out, nil
}

func (s *service) Resolve(ctx context.Context, code string) (pricing.Coupon, error) {
	// Codes are stored verbatim, so no trimming or case folding here.
	if code == "" {
		return pricing.Coupon{}, pkgerrors.New(pkgerrors.CodeCouponNotFound, "invalid coupon code")
	}
	coupon, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pricing.Coupon{}, pkgerrors.New(pkgerrors.CodeCouponNotFound, "invalid coupon code").
				WithDetails(map[string]any{"code": code})
		}
		return pricing.Coupon{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup coupon")
	}
	return pricing.Coupon{
		Code:         coupon.Code,
		DiscountType: coupon.DiscountType,
		Value:        coupon.Value,
		ApplicableTo: coupon.ApplicableTo,
		TargetID:     coupon.TargetID,
	}, nil
}

func (s *service) Create(ctx context.Context, input Input) (*models.Coupon, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	coupon := &models.Coupon{
		ID:           uuid.New(),
		Code:         strings.TrimSpace(input.Code),
		DiscountType: input.DiscountType,
		Value:        input.Value,
		ApplicableTo: input.ApplicableTo,
		TargetID:     input.TargetID,
		TargetName:   input.TargetName,
	}
	if err := s.repo.Create(ctx, coupon); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "coupon code already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create coupon")
	}
	return coupon, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input Input) (*models.Coupon, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	coupon, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "coupon not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load coupon")
	}
	coupon.Code = strings.TrimSpace(input.Code)
	coupon.DiscountType = input.DiscountType
	coupon.Value = input.Value
	coupon.ApplicableTo = input.ApplicableTo
	coupon.TargetID = input.TargetID
	coupon.TargetName = input.TargetName
	if err := s.repo.Update(ctx, coupon); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update coupon")
	}
	return coupon, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "coupon not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load coupon")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete coupon")
	}
	return nil
}
