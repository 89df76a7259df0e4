package service

import "errors"

var (
	// ErrNoteNotFound is returned when an operation targets a note id
	// that does not exist in the collection. A hard error for read and
	// update; delete treats the same condition as an idempotent no-op.
	ErrNoteNotFound = errors.New("note was not found")
)
