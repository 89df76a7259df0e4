package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/akimenko/securevault/internal/logger"
	"github.com/akimenko/securevault/internal/store"
	"github.com/akimenko/securevault/internal/validators"
	"github.com/akimenko/securevault/models"
)

// wipeAll retry policy: the wipe must not be partially observable, so a
// transient substrate failure is retried a few times before surfacing.
const (
	wipeRetries = 3
	wipeBackoff = 50 * time.Millisecond
)

type vaultService struct {
	storages  *store.Storages
	validator validators.Validator

	// notesMu and settingsMu serialize the read-modify-write cycles of
	// their logical stores. One lock per store is enough at the expected
	// record counts.
	notesMu    sync.Mutex
	settingsMu sync.Mutex

	// now and newID are swappable for tests.
	now   func() time.Time
	newID func() string

	logger *logger.Logger
}

// NewVaultService constructs the vault business layer over the given
// storages.
func NewVaultService(storages *store.Storages, validator validators.Validator, logger *logger.Logger) VaultService {
	return &vaultService{
		storages:  storages,
		validator: validator,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     generateNoteID,
		logger:    logger,
	}
}

// generateNoteID returns a UUIDv7 string. Time-ordered ids keep the
// on-disk document roughly chronological; the random tail makes rapid
// creation collision-safe.
func generateNoteID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

func (v *vaultService) ListNotes(ctx context.Context) ([]models.Note, error) {
	v.notesMu.Lock()
	defer v.notesMu.Unlock()

	return v.loadOrSeedNotes(ctx)
}

func (v *vaultService) ListNotesByCategory(ctx context.Context, category models.Category) ([]models.Note, error) {
	v.notesMu.Lock()
	defer v.notesMu.Unlock()

	notes, err := v.loadOrSeedNotes(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Note, 0, len(notes))
	for _, note := range notes {
		if note.Category == category {
			filtered = append(filtered, note)
		}
	}

	return filtered, nil
}

func (v *vaultService) GetNote(ctx context.Context, id string) (models.Note, error) {
	v.notesMu.Lock()
	defer v.notesMu.Unlock()

	notes, err := v.loadOrSeedNotes(ctx)
	if err != nil {
		return models.Note{}, err
	}

	for _, note := range notes {
		if note.ID == id {
			return note, nil
		}
	}

	return models.Note{}, ErrNoteNotFound
}

func (v *vaultService) AddNote(ctx context.Context, title, content string, category models.Category) (models.Note, error) {
	now := v.now()
	note := models.Note{
		ID:        v.newID(),
		Title:     title,
		Content:   content,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := v.validator.Validate(ctx, note); err != nil {
		return models.Note{}, err
	}

	v.notesMu.Lock()
	defer v.notesMu.Unlock()

	notes, err := v.loadOrSeedNotes(ctx)
	if err != nil {
		return models.Note{}, err
	}

	notes = append(notes, note)
	if err = v.storages.Notes.Save(ctx, notes); err != nil {
		return models.Note{}, err
	}

	v.logger.Debug().
		Str("func", "vaultService.AddNote").
		Str("id", note.ID).
		Str("category", string(note.Category)).
		Msg("note created")

	return note, nil
}

func (v *vaultService) UpdateNote(ctx context.Context, id string, patch models.NotePatch) (models.Note, error) {
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Note{}, err
	}

	v.notesMu.Lock()
	defer v.notesMu.Unlock()

	notes, err := v.loadOrSeedNotes(ctx)
	if err != nil {
		return models.Note{}, err
	}

	index := -1
	for i := range notes {
		if notes[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return models.Note{}, ErrNoteNotFound
	}

	note := notes[index]
	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}

	note.UpdatedAt = v.now()
	if note.UpdatedAt.Before(note.CreatedAt) {
		// host clock moved backwards; updatedAt may never precede createdAt
		note.UpdatedAt = note.CreatedAt
	}

	notes[index] = note
	if err = v.storages.Notes.Save(ctx, notes); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (v *vaultService) DeleteNote(ctx context.Context, id string) (bool, error) {
	v.notesMu.Lock()
	defer v.notesMu.Unlock()

	notes, err := v.loadOrSeedNotes(ctx)
	if err != nil {
		return false, err
	}

	remaining := notes[:0:0]
	for _, note := range notes {
		if note.ID != id {
			remaining = append(remaining, note)
		}
	}

	if len(remaining) == len(notes) {
		// already gone; idempotent no-op
		return false, nil
	}

	if err = v.storages.Notes.Save(ctx, remaining); err != nil {
		return false, err
	}

	v.logger.Debug().
		Str("func", "vaultService.DeleteNote").
		Str("id", id).
		Msg("note deleted")

	return true, nil
}

func (v *vaultService) GetSettings(ctx context.Context) (models.Settings, error) {
	v.settingsMu.Lock()
	defer v.settingsMu.Unlock()

	return v.loadOrSeedSettings(ctx)
}

func (v *vaultService) UpdateSettings(ctx context.Context, patch models.SettingsPatch) (models.Settings, error) {
	v.settingsMu.Lock()
	defer v.settingsMu.Unlock()

	settings, err := v.loadOrSeedSettings(ctx)
	if err != nil {
		return models.Settings{}, err
	}

	settings = patch.Apply(settings)
	if err = v.storages.Settings.Save(ctx, settings); err != nil {
		return models.Settings{}, err
	}

	return settings, nil
}

func (v *vaultService) ExportSnapshot(ctx context.Context) (string, error) {
	v.notesMu.Lock()
	notes, err := v.loadOrSeedNotes(ctx)
	v.notesMu.Unlock()
	if err != nil {
		return "", err
	}

	v.settingsMu.Lock()
	defer v.settingsMu.Unlock()

	settings, err := v.loadOrSeedSettings(ctx)
	if err != nil {
		return "", err
	}

	exportedAt := v.now()
	document := models.ExportDocument{
		Notes:         notes,
		Settings:      settings,
		ExportedAt:    exportedAt,
		FormatVersion: models.ExportFormatVersion,
	}

	payload, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode export document: %w", err)
	}

	// The backup date is recorded only once the document exists; a failed
	// export must not move it.
	settings.LastBackupDate = &exportedAt
	if err = v.storages.Settings.Save(ctx, settings); err != nil {
		return "", err
	}

	v.logger.Info().
		Str("func", "vaultService.ExportSnapshot").
		Int("notes", len(notes)).
		Msg("vault exported")

	return string(payload), nil
}

func (v *vaultService) WipeAll(ctx context.Context) error {
	v.notesMu.Lock()
	defer v.notesMu.Unlock()
	v.settingsMu.Lock()
	defer v.settingsMu.Unlock()

	backoff := retry.WithMaxRetries(wipeRetries, retry.NewConstant(wipeBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := v.storages.Blobs.DeleteMulti(ctx, store.EntityKeys()...); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		v.logger.Err(err).
			Str("func", "vaultService.WipeAll").
			Msg("failed to wipe vault")
		return err
	}

	v.logger.Info().Str("func", "vaultService.WipeAll").Msg("vault wiped")
	return nil
}

// loadOrSeedNotes reads the note collection, seeding and persisting the
// example notes when nothing has ever been written. Callers must hold
// notesMu.
func (v *vaultService) loadOrSeedNotes(ctx context.Context) ([]models.Note, error) {
	notes, err := v.storages.Notes.Load(ctx)
	if err == nil {
		return notes, nil
	}
	if !errors.Is(err, store.ErrBlobNotFound) {
		return nil, err
	}

	seeded := seedNotes()
	if err = v.storages.Notes.Save(ctx, seeded); err != nil {
		return nil, err
	}

	v.logger.Info().
		Str("func", "vaultService.loadOrSeedNotes").
		Int("count", len(seeded)).
		Msg("seeded example notes on first run")

	return seeded, nil
}

// loadOrSeedSettings reads the settings document, seeding defaults when
// nothing has ever been written. Callers must hold settingsMu.
func (v *vaultService) loadOrSeedSettings(ctx context.Context) (models.Settings, error) {
	settings, err := v.storages.Settings.Load(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, store.ErrBlobNotFound) {
		return models.Settings{}, err
	}

	settings = models.DefaultSettings()
	if err = v.storages.Settings.Save(ctx, settings); err != nil {
		return models.Settings{}, err
	}

	return settings, nil
}
