package widgets

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/radhanandani03-png/Lotoria/pkg/db/models"
	"github.com/radhanandani03-png/Lotoria/pkg/enums"
	pkgerrors "github.com/radhanandani03-png/Lotoria/pkg/errors"
)

type stubWidgetRepo struct {
	widgets map[uuid.UUID]*models.HomeWidget
}

func newStubWidgetRepo() *stubWidgetRepo {
	return &stubWidgetRepo{widgets: map[uuid.UUID]*models.HomeWidget{}}
}

func (s *stubWidgetRepo) List(_ context.Context) ([]models.HomeWidget, error) {
	var out []models.HomeWidget
	for _, w := range s.widgets {
		out = append(out, *w)
	}
	return out, nil
}

func (s *stubWidgetRepo) MaxPosition(_ context.Context) (int, error) {
	max := -1
	for _, w := range s.widgets {
		if w.Position > max {
			max = w.Position
		}
	}
	return max, nil
}

func (s *stubWidgetRepo) GetByID(_ context.Context, id uuid.UUID) (*models.HomeWidget, error) {
	if w, ok := s.widgets[id]; ok {
		return w, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubWidgetRepo) Create(_ context.Context, widget *models.HomeWidget) error {
	s.widgets[widget.ID] = widget
	return nil
}

func (s *stubWidgetRepo) Update(_ context.Context, widget *models.HomeWidget) error {
	s.widgets[widget.ID] = widget
	return nil
}

func (s *stubWidgetRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.widgets[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.widgets, id)
	return nil
}

func TestCreateWidgetAppendsPosition(t *testing.T) {
	t.Parallel()
	svc, _ := NewService(newStubWidgetRepo())

	first, err := svc.Create(context.Background(), Input{
		Type:    enums.WidgetTypeImage,
		Content: "https://cdn.example.com/banner.jpg",
		Layout:  enums.WidgetLayoutFull,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Position != 0 {
		t.Fatalf("expected position 0, got %d", first.Position)
	}

	second, err := svc.Create(context.Background(), Input{
		Type:    enums.WidgetTypeText,
		Content: "Monsoon offers are live",
		Layout:  enums.WidgetLayoutHalf,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.Position != 1 {
		t.Fatalf("expected position 1, got %d", second.Position)
	}
}

func TestCreateWidgetRejectsInvalidType(t *testing.T) {
	t.Parallel()
	svc, _ := NewService(newStubWidgetRepo())

	_, err := svc.Create(context.Background(), Input{
		Type:    "gif",
		Content: "x",
		Layout:  enums.WidgetLayoutFull,
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateWidgetMissing(t *testing.T) {
	t.Parallel()
	svc, _ := NewService(newStubWidgetRepo())

	_, err := svc.Update(context.Background(), uuid.New(), Input{
		Type:    enums.WidgetTypeText,
		Content: "x",
		Layout:  enums.WidgetLayoutFull,
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
