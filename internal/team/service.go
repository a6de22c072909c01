package team

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

type teamRepo interface {
	List(ctx context.Context) ([]models.TeamMember, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.TeamMember, error)
	Create(ctx context.Context, member *models.TeamMember) error
	Update(ctx context.Context, member *models.TeamMember) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service exposes the public team page and its admin management.
type Service interface {
	List(ctx context.Context) ([]models.TeamMember, error)
	Create(ctx context.Context, input Input) (*models.TeamMember, error)
	Update(ctx context.Context, id uuid.UUID, input Input) (*models.TeamMember, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Input carries the writable fields of a team member.
type Input struct {
	Name        string
	Role        string
	Image       string
	IsFounder   bool
	Bio         *string
	Certificate *string
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "member name is required")
	}
	return nil
}

type service struct {
	repo teamRepo
}

// NewService builds the team service.
func NewService(repo teamRepo) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("team repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]models.TeamMember, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list team")
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, input Input) (*models.TeamMember, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	member := &models.TeamMember{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Role:        strings.TrimSpace(input.Role),
		Image:       strings.TrimSpace(input.Image),
		IsFounder:   input.IsFounder,
		Bio:         input.Bio,
		Certificate: input.Certificate,
	}
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create team member")
	}
	return member, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input Input) (*models.TeamMember, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "team member not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load team member")
	}
	member.Name = strings.TrimSpace(input.Name)
	member.Role = strings.TrimSpace(input.Role)
	member.Image = strings.TrimSpace(input.Image)
	member.IsFounder = input.IsFounder
	member.Bio = input.Bio
	member.Certificate = input.Certificate
	if err := s.repo.Update(ctx, member); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update team member")
	}
	return member, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "team member not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete team member")
	}
	return nil
}
