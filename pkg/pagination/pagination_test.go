package pagination

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCursorRoundTrip(t *testing.T) {
	want := Cursor{
		CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 123456789, time.UTC),
		ID:        uuid.New(),
	}

	got, err := ParseCursor(EncodeCursor(want))
	if err != nil {
		t.Fatalf("parse cursor: %v", err)
	}
	if got == nil {
		t.Fatal("expected a cursor")
	}
	if !got.CreatedAt.Equal(want.CreatedAt) || got.ID != want.ID {
		t.Fatalf("expected %+v, got %+v", want, *got)
	}
}

func TestParseCursorEmptyMeansFirstPage(t *testing.T) {
	got, err := ParseCursor("  ")
	if err != nil {
		t.Fatalf("parse cursor: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil cursor, got %+v", *got)
	}
}

func TestParseCursorRejectsGarbage(t *testing.T) {
	for _, value := range []string{"not-base64!", "bm8tZG90", "MTIzLm5vdC1hLXV1aWQ"} {
		if _, err := ParseCursor(value); err == nil {
			t.Fatalf("expected error for %q", value)
		}
	}
}

func TestNormalizeLimit(t *testing.T) {
	if got := NormalizeLimit(0); got != DefaultLimit {
		t.Fatalf("expected default, got %d", got)
	}
	if got := NormalizeLimit(MaxLimit + 50); got != MaxLimit {
		t.Fatalf("expected cap, got %d", got)
	}
	if got := NormalizeLimit(7); got != 7 {
		t.Fatalf("expected passthrough, got %d", got)
	}
}

type pagedRow struct {
	at time.Time
	id uuid.UUID
}

func TestTrim(t *testing.T) {
	now := time.Now().UTC()
	rows := []pagedRow{
		{at: now, id: uuid.New()},
		{at: now.Add(-time.Minute), id: uuid.New()},
		{at: now.Add(-2 * time.Minute), id: uuid.New()},
	}
	keyset := func(r pagedRow) Cursor { return Cursor{CreatedAt: r.at, ID: r.id} }

	page, next := Trim(rows, 2, keyset)
	if len(page) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(page))
	}
	if next == "" {
		t.Fatal("expected a next cursor")
	}
	cursor, err := ParseCursor(next)
	if err != nil {
		t.Fatalf("parse next cursor: %v", err)
	}
	if cursor.ID != rows[1].id {
		t.Fatal("next cursor should point at the last returned row")
	}

	page, next = Trim(rows[2:], 2, keyset)
	if len(page) != 1 || next != "" {
		t.Fatalf("expected final page with no cursor, got %d rows, cursor %q", len(page), next)
	}
}
