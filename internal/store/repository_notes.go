package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akimenko/securevault/internal/logger"
	"github.com/akimenko/securevault/models"
)

type notesRepository struct {
	blobs  BlobStore
	logger *logger.Logger
}

// NewNotesRepository returns a NotesRepository storing the whole collection
// as one JSON array under KeyNotes.
func NewNotesRepository(blobs BlobStore, logger *logger.Logger) NotesRepository {
	return &notesRepository{blobs: blobs, logger: logger}
}

func (r *notesRepository) Load(ctx context.Context) ([]models.Note, error) {
	raw, err := r.blobs.Get(ctx, KeyNotes)
	if err != nil {
		// ErrBlobNotFound passes through untouched: the service uses it
		// to trigger first-run seeding.
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal([]byte(raw), &notes); err != nil {
		r.logger.Err(err).
			Str("func", "notesRepository.Load").
			Msg("failed to decode notes document")
		return nil, fmt.Errorf("%w: decode notes: %w", ErrCorruptBlob, err)
	}

	return notes, nil
}

func (r *notesRepository) Save(ctx context.Context, notes []models.Note) error {
	if notes == nil {
		notes = []models.Note{}
	}

	payload, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}

	if err = r.blobs.Set(ctx, KeyNotes, string(payload)); err != nil {
		r.logger.Err(err).
			Str("func", "notesRepository.Save").
			Int("count", len(notes)).
			Msg("failed to persist notes document")
		return err
	}

	return nil
}
