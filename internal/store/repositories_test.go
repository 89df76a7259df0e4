// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/akimenko/securevault/internal/logger"
	"github.com/akimenko/securevault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// NotesRepository
// ---------------------------------------------------------------------------

func TestNotesRepository_LoadMissingKey(t *testing.T) {
	r := NewNotesRepository(NewMemoryBlobStore(), logger.Nop())

	_, err := r.Load(context.Background())
	require.ErrorIs(t, err, ErrBlobNotFound)
}

func TestNotesRepository_SaveLoadRoundTrip(t *testing.T) {
	r := NewNotesRepository(NewMemoryBlobStore(), logger.Nop())
	ctx := context.Background()

	created := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	notes := []models.Note{{
		ID:        "1",
		Title:     "Personal Email",
		Content:   "Gmail: john.doe@gmail.com",
		Category:  models.CategoryPasswords,
		CreatedAt: created,
		UpdatedAt: created,
	}}

	require.NoError(t, r.Save(ctx, notes))

	got, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, notes, got)
}

func TestNotesRepository_SaveNilPersistsEmptyArray(t *testing.T) {
	blobs := NewMemoryBlobStore()
	r := NewNotesRepository(blobs, logger.Nop())
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, nil))

	raw, err := blobs.Get(ctx, KeyNotes)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, raw)
}

func TestNotesRepository_LoadCorruptDocument(t *testing.T) {
	blobs := NewMemoryBlobStore()
	r := NewNotesRepository(blobs, logger.Nop())
	ctx := context.Background()

	require.NoError(t, blobs.Set(ctx, KeyNotes, "{not json"))

	_, err := r.Load(ctx)
	require.ErrorIs(t, err, ErrCorruptBlob)
}

// ---------------------------------------------------------------------------
// SettingsRepository
// ---------------------------------------------------------------------------

func TestSettingsRepository_LoadMissingKey(t *testing.T) {
	r := NewSettingsRepository(NewMemoryBlobStore(), logger.Nop())

	_, err := r.Load(context.Background())
	require.ErrorIs(t, err, ErrBlobNotFound)
}

func TestSettingsRepository_SaveLoadRoundTrip(t *testing.T) {
	r := NewSettingsRepository(NewMemoryBlobStore(), logger.Nop())
	ctx := context.Background()

	backup := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	settings := models.Settings{
		BiometricEnabled:                    false,
		RequireBiometricForSensitiveActions: false,
		LastBackupDate:                      &backup,
	}

	require.NoError(t, r.Save(ctx, settings))

	got, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings, got)
}

func TestSettingsRepository_AbsentFieldsKeepDefaults(t *testing.T) {
	blobs := NewMemoryBlobStore()
	r := NewSettingsRepository(blobs, logger.Nop())
	ctx := context.Background()

	// a document written by an older format without the require flag
	require.NoError(t, blobs.Set(ctx, KeySettings, `{"biometricEnabled":false}`))

	got, err := r.Load(ctx)
	require.NoError(t, err)
	assert.False(t, got.BiometricEnabled)
	assert.True(t, got.RequireBiometricForSensitiveActions, "missing field must keep its default")
}

// ---------------------------------------------------------------------------
// SessionRepository
// ---------------------------------------------------------------------------

func TestSessionRepository_LoadMissingKeyIsFalse(t *testing.T) {
	r := NewSessionRepository(NewMemoryBlobStore(), logger.Nop())

	authenticated, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, authenticated)
}

func TestSessionRepository_SaveLoadRoundTrip(t *testing.T) {
	r := NewSessionRepository(NewMemoryBlobStore(), logger.Nop())
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, true))

	authenticated, err := r.Load(ctx)
	require.NoError(t, err)
	assert.True(t, authenticated)

	require.NoError(t, r.Save(ctx, false))

	authenticated, err = r.Load(ctx)
	require.NoError(t, err)
	assert.False(t, authenticated)
}

func TestSessionRepository_LoadCorruptFlag(t *testing.T) {
	blobs := NewMemoryBlobStore()
	r := NewSessionRepository(blobs, logger.Nop())
	ctx := context.Background()

	require.NoError(t, blobs.Set(ctx, KeySession, "maybe"))

	_, err := r.Load(ctx)
	require.ErrorIs(t, err, ErrCorruptBlob)
}

// ---------------------------------------------------------------------------
// Storages
// ---------------------------------------------------------------------------

func TestNewStoragesWithBlobs_WiresAllRepositories(t *testing.T) {
	s := NewStoragesWithBlobs(NewMemoryBlobStore(), logger.Nop())

	require.NotNil(t, s.Blobs)
	require.NotNil(t, s.Notes)
	require.NotNil(t, s.Settings)
	require.NotNil(t, s.Session)
}
