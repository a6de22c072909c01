package pages

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/radhanandani03-png/Lotoria/pkg/db/models"
	"github.com/radhanandani03-png/Lotoria/pkg/enums"
	pkgerrors "github.com/radhanandani03-png/Lotoria/pkg/errors"
	"github.com/radhanandani03-png/Lotoria/pkg/types"
)

type stubPageRepo struct {
	pages map[uuid.UUID]*models.CustomPage
}

func newStubPageRepo() *stubPageRepo {
	return &stubPageRepo{pages: map[uuid.UUID]*models.CustomPage{}}
}

func (s *stubPageRepo) List(_ context.Context, publishedOnly bool) ([]models.CustomPage, error) {
	var out []models.CustomPage
	for _, p := range s.pages {
		if publishedOnly && !p.Published {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *stubPageRepo) GetByID(_ context.Context, id uuid.UUID) (*models.CustomPage, error) {
	if p, ok := s.pages[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubPageRepo) GetBySlug(_ context.Context, slug string) (*models.CustomPage, error) {
	for _, p := range s.pages {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubPageRepo) Create(_ context.Context, page *models.CustomPage) error {
	for _, p := range s.pages {
		if p.Slug == page.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	s.pages[page.ID] = page
	return nil
}

func (s *stubPageRepo) Update(_ context.Context, page *models.CustomPage) error {
	s.pages[page.ID] = page
	return nil
}

func (s *stubPageRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.pages[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.pages, id)
	return nil
}

func strPtr(v string) *string { return &v }

func TestSlugify(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"Bridal Packages":    "bridal-packages",
		"  About Us!  ":      "about-us",
		"FAQ & Pricing 2025": "faq-pricing-2025",
		"---":                "",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCreatePageSlugFromTitle(t *testing.T) {
	t.Parallel()
	svc, _ := NewService(newStubPageRepo())

	page, err := svc.Create(context.Background(), Input{
		Title:     "Bridal Packages",
		Published: true,
		Blocks: types.PageBlocks{
			{ID: "b1", Type: enums.PageBlockHero, Title: strPtr("Bridal Packages")},
			{ID: "b2", Type: enums.PageBlockText, Content: strPtr("Our signature looks.")},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if page.Slug != "bridal-packages" {
		t.Fatalf("expected derived slug, got %q", page.Slug)
	}
}

func TestCreatePageRejectsUnknownBlockType(t *testing.T) {
	t.Parallel()
	svc, _ := NewService(newStubPageRepo())

	_, err := svc.Create(context.Background(), Input{
		Title:  "About",
		Blocks: types.PageBlocks{{ID: "b1", Type: "carousel"}},
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreatePageDuplicateSlug(t *testing.T) {
	t.Parallel()
	svc, _ := NewService(newStubPageRepo())

	if _, err := svc.Create(context.Background(), Input{Title: "About"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(context.Background(), Input{Title: "About"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestGetBySlugHidesUnpublished(t *testing.T) {
	t.Parallel()
	repo := newStubPageRepo()
	svc, _ := NewService(repo)

	page, err := svc.Create(context.Background(), Input{Title: "Draft Page", Published: false})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err = svc.GetBySlug(context.Background(), page.Slug)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for draft, got %v", err)
	}

	published, err := svc.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(published) != 0 {
		t.Fatal("drafts must not appear in the public list")
	}
}
