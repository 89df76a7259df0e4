// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the persistence layer of the vault.
//
// The layer has two tiers:
//
//   - BlobStore: an opaque key/string substrate (in-memory, SQLite-backed,
//     or an encrypting decorator over either). It has no schema awareness
//     and no transactions.
//   - Repositories: per-entity adapters (notes, settings, session flag)
//     that serialize domain models to JSON documents stored under fixed
//     blob keys.
//
// The vault service is the only writer of the blob keys backing the domain
// entities; nothing else in the application touches them.
package store

import (
	"context"

	"github.com/akimenko/securevault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BlobStore is the opaque key→string persistence substrate.
// Get returns ErrBlobNotFound when the key has never been written;
// any other failure wraps ErrStorageUnavailable.
type BlobStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	DeleteMulti(ctx context.Context, keys ...string) error
}

// NotesRepository persists the whole note collection as one JSON document.
type NotesRepository interface {
	Load(ctx context.Context) ([]models.Note, error)
	Save(ctx context.Context, notes []models.Note) error
}

// SettingsRepository persists the settings object as one JSON document.
type SettingsRepository interface {
	Load(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, settings models.Settings) error
}

// SessionRepository persists the "was authenticated last session" flag.
// Load returns false (not an error) when the flag was never written.
type SessionRepository interface {
	Load(ctx context.Context) (bool, error)
	Save(ctx context.Context, authenticated bool) error
}
