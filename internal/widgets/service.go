package widgets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/radhanandani03-png/Lotoria/pkg/db/models"
	"github.com/radhanandani03-png/Lotoria/pkg/enums"
	pkgerrors "github.com/radhanandani03-png/Lotoria/pkg/errors"
)

type widgetRepo interface {
	List(ctx context.Context) ([]models.HomeWidget, error)
	MaxPosition(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.HomeWidget, error)
	Create(ctx context.Context, widget *models.HomeWidget) error
	Update(ctx context.Context, widget *models.HomeWidget) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service exposes the home widget slots and their admin management.
type Service interface {
	List(ctx context.Context) ([]models.HomeWidget, error)
	Create(ctx context.Context, input Input) (*models.HomeWidget, error)
	Update(ctx context.Context, id uuid.UUID, input Input) (*models.HomeWidget, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Input carries the writable fields of a home widget. New widgets
// are appended at the end of the display order.
type Input struct {
	Type       enums.WidgetType
	Content    string
	LinkURL    *string
	Caption    *string
	Title      *string
	Subtitle   *string
	ButtonText *string
	Layout     enums.WidgetLayout
	Price      *int64
	Discount   *string
}

func (in Input) validate() error {
	if !in.Type.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid widget type")
	}
	if !in.Layout.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid widget layout")
	}
	if strings.TrimSpace(in.Content) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "widget content is required")
	}
	if in.Price != nil && *in.Price < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "widget price cannot be negative")
	}
	return nil
}

type service struct {
	repo widgetRepo
}

// NewService builds the widget service.
func NewService(repo widgetRepo) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("widget repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]models.HomeWidget, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list widgets")
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, input Input) (*models.HomeWidget, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	max, err := s.repo.MaxPosition(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read widget positions")
	}
	widget := &models.HomeWidget{
		ID:         uuid.New(),
		Type:       input.Type,
		Content:    strings.TrimSpace(input.Content),
		LinkURL:    input.LinkURL,
		Caption:    input.Caption,
		Title:      input.Title,
		Subtitle:   input.Subtitle,
		ButtonText: input.ButtonText,
		Layout:     input.Layout,
		Price:      input.Price,
		Discount:   input.Discount,
		Position:   max + 1,
	}
	if err := s.repo.Create(ctx, widget); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create widget")
	}
	return widget, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input Input) (*models.HomeWidget, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	widget, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "widget not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load widget")
	}
	widget.Type = input.Type
	widget.Content = strings.TrimSpace(input.Content)
	widget.LinkURL = input.LinkURL
	widget.Caption = input.Caption
	widget.Title = input.Title
	widget.Subtitle = input.Subtitle
	widget.ButtonText = input.ButtonText
	widget.Layout = input.Layout
	widget.Price = input.Price
	widget.Discount = input.Discount
	if err := s.repo.Update(ctx, widget); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update widget")
	}
	return widget, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "widget not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete widget")
	}
	return nil
}
