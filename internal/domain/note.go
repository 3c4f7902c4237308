package domain

import "time"

// Note is the domain entity for a single note.
// UserID is set once at creation from the authenticated caller and never changes.
type Note struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Tag         string
	CreatedAt   time.Time
}
