// Package pagination implements the keyset paging used by the booking
// history listings, ordered newest first on (created_at, id).
package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultLimit is the page size when the query omits one.
	DefaultLimit = 25
	// MaxLimit caps how many bookings one page may return.
	MaxLimit = 100
)

// Params holds the paging inputs taken from the query string.
type Params struct {
	Limit  int
	Cursor string
}

// Cursor pins a position in the keyset: the created_at and id of the
// last booking on the previous page.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// NormalizeLimit clamps a requested limit into the allowed range.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// EncodeCursor packs the keyset position as unix-nanos dot uuid in
// url-safe base64, so the token survives query strings unescaped.
func EncodeCursor(cursor Cursor) string {
	payload := fmt.Sprintf("%d.%s", cursor.CreatedAt.UTC().UnixNano(), cursor.ID)
	return base64.RawURLEncoding.EncodeToString([]byte(payload))
}

// ParseCursor decodes a client-supplied cursor. An empty string means
// the first page and returns a nil cursor.
func ParseCursor(value string) (*Cursor, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("decode cursor: %w", err)
	}
	nanosRaw, idRaw, ok := strings.Cut(string(decoded), ".")
	if !ok {
		return nil, fmt.Errorf("malformed cursor")
	}

	nanos, err := strconv.ParseInt(nanosRaw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed cursor timestamp: %w", err)
	}
	id, err := uuid.Parse(idRaw)
	if err != nil {
		return nil, fmt.Errorf("malformed cursor id: %w", err)
	}
	return &Cursor{
		CreatedAt: time.Unix(0, nanos).UTC(),
		ID:        id,
	}, nil
}

// Trim drops the lookahead row a repository fetched beyond limit and
// returns the cursor for the next page, empty when the listing is
// exhausted. keyset extracts the cursor position from a row.
func Trim[T any](rows []T, limit int, keyset func(T) Cursor) ([]T, string) {
	if len(rows) <= limit {
		return rows, ""
	}
	rows = rows[:limit]
	return rows, EncodeCursor(keyset(rows[len(rows)-1]))
}
