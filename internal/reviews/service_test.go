package reviews

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/radhanandani03-png/Lotoria/pkg/db/models"
	pkgerrors "github.com/radhanandani03-png/Lotoria/pkg/errors"
)

type stubReviewRepo struct {
	reviews map[uuid.UUID]models.Review
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: map[uuid.UUID]models.Review{}}
}

func (s *stubReviewRepo) List(_ context.Context) ([]models.Review, error) {
	var out []models.Review
	for _, r := range s.reviews {
		out = append(out, r)
	}
	return out, nil
}

func (s *stubReviewRepo) Create(_ context.Context, review *models.Review) error {
	s.reviews[review.ID] = *review
	return nil
}

func (s *stubReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.reviews[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.reviews, id)
	return nil
}

func TestCreateReviewTrimsAndStores(t *testing.T) {
	t.Parallel()
	repo := newStubReviewRepo()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	review, err := svc.Create(context.Background(), Input{
		AuthorName: "  Anjali  ",
		Rating:     5,
		Comment:    " Loved the facial! ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if review.AuthorName != "Anjali" || review.Comment != "Loved the facial!" {
		t.Fatalf("unexpected review %+v", review)
	}
	if len(repo.reviews) != 1 {
		t.Fatal("review not persisted")
	}
}

func TestCreateReviewRejectsRatingOutOfRange(t *testing.T) {
	t.Parallel()
	svc, _ := NewService(newStubReviewRepo())

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), Input{AuthorName: "Anjali", Rating: rating})
		if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("rating %d: expected validation error, got %v", rating, err)
		}
	}
}

func TestDeleteReviewMissing(t *testing.T) {
	t.Parallel()
	svc, _ := NewService(newStubReviewRepo())

	err := svc.Delete(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
