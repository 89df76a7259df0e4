package models

import "time"

// Note represents a single vault record.
// It is the primary persistence model for user-entered secure text.
type Note struct {
	// ID is the unique identifier of the note, assigned once at creation.
	ID string `json:"id"`

	// Title is a short human-readable caption, 1..100 unicode characters.
	Title string `json:"title"`

	// Content is the note body, 1..5000 unicode characters.
	// Content may hold secrets; it is opaque to the storage layer.
	Content string `json:"content"`

	// Category assigns the note to one of the fixed vault categories.
	// Immutable after creation.
	Category Category `json:"category"`

	// CreatedAt is the UTC timestamp when the note was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the UTC timestamp of the last modification.
	// UpdatedAt is never earlier than CreatedAt.
	UpdatedAt time.Time `json:"updatedAt"`
}

// NotePatch describes a partial update of a note.
// Nil fields mean "do not touch". Category and ID are not patchable.
type NotePatch struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// IsEmpty reports whether the patch carries no changes at all.
func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil
}
