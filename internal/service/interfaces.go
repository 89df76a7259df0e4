// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the vault's business layer.
//
// VaultService owns the Note and Settings entities: it validates input,
// assigns identifiers and timestamps, enforces the data invariants, and
// drives the repositories in internal/store. It has no awareness of
// authentication; the authorization gate decorates it from the outside
// and VaultService trusts its caller.
package service

import (
	"context"

	"github.com/akimenko/securevault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_service_mock.go -package=mock

// VaultService is the durable CRUD surface over notes and settings.
type VaultService interface {
	// ListNotes returns all notes, unordered (callers sort). On the very
	// first call with no persisted data it seeds the documented example
	// notes and persists them before returning.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// ListNotesByCategory returns the notes belonging to category.
	ListNotesByCategory(ctx context.Context, category models.Category) ([]models.Note, error)

	// GetNote returns the note with the given id, or ErrNoteNotFound.
	GetNote(ctx context.Context, id string) (models.Note, error)

	// AddNote validates the input, assigns a fresh id and timestamps,
	// persists the grown collection, and returns the created note.
	AddNote(ctx context.Context, title, content string, category models.Category) (models.Note, error)

	// UpdateNote applies a partial title/content update to an existing
	// note. Category, id and createdAt are immutable. ErrNoteNotFound
	// when id is absent.
	UpdateNote(ctx context.Context, id string, patch models.NotePatch) (models.Note, error)

	// DeleteNote removes the note with the given id and reports whether a
	// removal occurred. Deleting an absent note is an idempotent no-op,
	// not an error.
	DeleteNote(ctx context.Context, id string) (bool, error)

	// GetSettings returns the persisted settings, seeding defaults on
	// first access.
	GetSettings(ctx context.Context) (models.Settings, error)

	// UpdateSettings merges the patch into the persisted settings and
	// returns the result.
	UpdateSettings(ctx context.Context, patch models.SettingsPatch) (models.Settings, error)

	// ExportSnapshot serializes notes and settings into a portable JSON
	// document and records the backup time. It does not write files.
	ExportSnapshot(ctx context.Context) (string, error)

	// WipeAll removes every persisted key (notes, settings, session
	// flag) unconditionally.
	WipeAll(ctx context.Context) error
}
