// Package pagination implements keyset pages over rows ordered newest first.
package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ErrInvalidCursor is returned for cursors that do not decode to a row position.
var ErrInvalidCursor = errors.New("invalid pagination cursor")

// Cursor is the (logged_at, id) position of the last row on a page.
type Cursor struct {
	ID       uuid.UUID `json:"id"`
	LoggedAt time.Time `json:"logged_at"`
}

// NewCursor positions a cursor on a row.
func NewCursor(id uuid.UUID, loggedAt time.Time) *Cursor {
	return &Cursor{ID: id, LoggedAt: loggedAt.UTC()}
}

// Encode returns the opaque URL-safe form of the cursor.
func (c *Cursor) Encode() string {
	data, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeCursor parses an opaque cursor. An empty string means the first page.
func DecodeCursor(encoded string) (*Cursor, error) {
	if encoded == "" {
		return nil, nil
	}

	data, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Join(ErrInvalidCursor, err)
	}

	var cursor Cursor
	if err := json.Unmarshal(data, &cursor); err != nil {
		return nil, errors.Join(ErrInvalidCursor, err)
	}
	if cursor.ID == uuid.Nil || cursor.LoggedAt.IsZero() {
		return nil, ErrInvalidCursor
	}

	return &cursor, nil
}

// NormalizeLimit clamps a requested page size to [1, MaxLimit], defaulting non-positive values.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// TrimPage cuts rows fetched with limit+1 down to limit and reports whether more exist.
func TrimPage[T any](rows []T, limit int) ([]T, bool) {
	limit = NormalizeLimit(limit)
	if len(rows) > limit {
		return rows[:limit], true
	}
	return rows, false
}
