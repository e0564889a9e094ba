// Package models defines the note entity and the request schemas accepted by
// the notelite API.
//
// The Note struct is the single source of truth for the persisted schema:
// the migration runner derives the `note` table from its GORM struct tags,
// and the API serializes it directly as the response body. Request payloads
// use dedicated schema types ([CreateNote], [UpdateNote]) so that payload
// validation stays separate from the stored record.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// NoteID is a typed identifier for notes.
//
// IDs are assigned by the storage engine on insert (integer primary key) and
// are immutable afterwards. The zero value marks a note that has not been
// persisted yet.
type NoteID int64

// ParseNoteID parses a note ID from its string form as it appears in URL
// paths. IDs are positive integers; anything else is rejected.
func ParseNoteID(s string) (NoteID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid note ID %q: %w", s, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid note ID %q: must be positive", s)
	}
	return NoteID(id), nil
}

func (id NoteID) String() string { return strconv.FormatInt(int64(id), 10) }
func (id NoteID) IsZero() bool   { return id == 0 }

// Note is a single note record, mapped to the `note` table.
type Note struct {
	ID          NoteID `gorm:"primaryKey;autoIncrement" json:"id"`
	Text        string `gorm:"not null" json:"text"`
	IsCompleted bool   `gorm:"not null;default:false" json:"is_completed"`
}

// TableName keeps the singular table name used by the service since its
// first deployment.
func (Note) TableName() string { return "note" }

// CreateNote is the request schema for creating a note.
type CreateNote struct {
	Text string `json:"text"`
}

// Validate checks the create payload before it reaches the store.
func (c CreateNote) Validate() error {
	if strings.TrimSpace(c.Text) == "" {
		return fmt.Errorf("text is required")
	}
	return nil
}

// UpdateNote is the request schema for partial updates. Nil fields are left
// untouched on the stored record, so a PATCH carrying only is_completed does
// not clobber the text.
type UpdateNote struct {
	Text        *string `json:"text,omitempty"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
}

// Validate checks the update payload. Text may be omitted entirely, but when
// present it must be non-empty, matching the create-time invariant.
func (u UpdateNote) Validate() error {
	if u.Text != nil && strings.TrimSpace(*u.Text) == "" {
		return fmt.Errorf("text must not be empty")
	}
	return nil
}

// Apply copies the provided fields onto an existing note.
func (u UpdateNote) Apply(note *Note) {
	if u.Text != nil {
		note.Text = *u.Text
	}
	if u.IsCompleted != nil {
		note.IsCompleted = *u.IsCompleted
	}
}
