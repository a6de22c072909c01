package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/radhanandani03-png/Lotoria/pkg/db/models"
	pkgerrors "github.com/radhanandani03-png/Lotoria/pkg/errors"
)

type productLoader interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Entry is one cart slot joined with the product it references.
type Entry struct {
	Position int            `json:"position"`
	Product  models.Product `json:"product"`
}

// Service exposes cart reads and mutations. The same product may be
// added repeatedly; each occurrence is a separate slot.
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) ([]Entry, error)
	Add(ctx context.Context, userID, productID uuid.UUID) ([]Entry, error)
	RemoveAt(ctx context.Context, userID uuid.UUID, position int) ([]Entry, error)
	Clear(ctx context.Context, userID uuid.UUID) error
	// Items returns the raw cart rows for checkout pricing.
	Items(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
}

type service struct {
	repo     *Repository
	products productLoader
	tx       txRunner
}

// NewService builds a cart service backed by the provided stack.
func NewService(repo *Repository, products productLoader, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, products: products, tx: tx}, nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) ([]Entry, error) {
	items, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return s.join(ctx, items)
}

func (s *service) Add(ctx context.Context, userID, productID uuid.UUID) ([]Entry, error) {
	if _, err := s.products.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, err
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		max, err := repo.MaxPosition(ctx, userID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cart position")
		}
		item := &models.CartItem{
			ID:        uuid.New(),
			UserID:    userID,
			ProductID: productID,
			Position:  max + 1,
		}
		if err := repo.Add(ctx, item); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add cart item")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

func (s *service) RemoveAt(ctx context.Context, userID uuid.UUID, position int) ([]Entry, error) {
	if position < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "position must be non-negative")
	}
	affected, err := s.repo.RemoveAt(ctx, userID, position)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove cart item")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	return s.Get(ctx, userID)
}

func (s *service) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.Clear(ctx, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

func (s *service) Items(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	items, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return items, nil
}

// join resolves every cart row to its product. Rows whose product has
// been removed from the catalog are skipped rather than failing the
// whole cart.
func (s *service) join(ctx context.Context, items []models.CartItem) ([]Entry, error) {
	if len(items) == 0 {
		return []Entry{}, nil
	}

	ids := make([]uuid.UUID, 0, len(items))
	seen := map[uuid.UUID]struct{}{}
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	products, err := s.products.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		entries = append(entries, Entry{Position: item.Position, Product: product})
	}
	return entries, nil
}
