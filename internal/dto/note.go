package dto

import "time"

type CreateNoteRequest struct {
	Title       TrimmedString `json:"title" binding:"required,min=4,max=120"`
	Description TrimmedString `json:"description" binding:"required,min=8,max=1000"`
	Tag         string        `json:"tag" binding:"omitempty,max=50"` // empty = "General"
}

type UpdateNoteRequest struct {
	Title       *TrimmedString `json:"title" binding:"omitempty,min=4,max=120"`
	Description *TrimmedString `json:"description" binding:"omitempty,min=8,max=1000"`
	Tag         *string        `json:"tag" binding:"omitempty,max=50"` // nil or empty = keep current
}

type NoteResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tag         string    `json:"tag"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListNotesResponse struct {
	Items []NoteResponse `json:"items"`
}
