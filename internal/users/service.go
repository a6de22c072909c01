package users

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

type userRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]models.User, error)
}

// Service exposes account profiles.
type Service interface {
	Get(ctx context.Context, id uuid.UUID) (Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input ProfileInput) (Profile, error)
	List(ctx context.Context) ([]Profile, error)
}

// ProfileInput carries the self-service editable fields.
type ProfileInput struct {
	Name            string
	Mobile          string
	Address         string
	FavoriteService *string
}

type service struct {
	repo userRepo
}

// NewService builds the users service.
func NewService(repo userRepo) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Profile, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Profile{}, pkgerrors.New(pkgerrors.CodeNotFound, "account not found")
		}
		return Profile{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load account")
	}
	return FromModel(user), nil
}

func (s *service) UpdateProfile(ctx context.Context, id uuid.UUID, input ProfileInput) (Profile, error) {
	if strings.TrimSpace(input.Name) == "" {
		return Profile{}, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Profile{}, pkgerrors.New(pkgerrors.CodeNotFound, "account not found")
		}
		return Profile{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load account")
	}
	user.Name = strings.TrimSpace(input.Name)
	user.Mobile = strings.TrimSpace(input.Mobile)
	user.Address = strings.TrimSpace(input.Address)
	user.FavoriteService = input.FavoriteService
	if err := s.repo.Update(ctx, user); err != nil {
		return Profile{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update account")
	}
	return FromModel(user), nil
}

func (s *service) List(ctx context.Context) ([]Profile, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list accounts")
	}
	out := make([]Profile, 0, len(users))
	for i := range users {
		out = append(out, FromModel(&users[i]))
	}
	return out, nil
}
