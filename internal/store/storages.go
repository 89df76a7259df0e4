package store

import (
	"context"
	"fmt"

	"github.com/akimenko/securevault/internal/config"
	"github.com/akimenko/securevault/internal/crypto"
	"github.com/akimenko/securevault/internal/logger"
)

// Storages groups all vault repositories plus the underlying blob store
// into a single value that can be passed around the service layer.
type Storages struct {
	// Blobs is the key/value substrate backing everything below. The
	// vault service uses it directly only for the full wipe.
	Blobs BlobStore

	// Notes is the whole-collection note repository.
	Notes NotesRepository

	// Settings is the settings document repository.
	Settings SettingsRepository

	// Session is the persisted session-flag repository.
	Session SessionRepository
}

// NewStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens the blob store selected by cfg.Driver (SQLite file or
//     in-memory), running schema migrations for the SQLite backend.
//  2. When cfg.Passphrase is non-empty, wraps the blob store in the
//     AES-GCM encrypting decorator.
//  3. Constructs a [Storages] value wired to fresh repositories.
//
// Returns an error if the database cannot be opened or migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	var blobs BlobStore
	var err error

	switch cfg.Driver {
	case config.DriverMemory:
		blobs = NewMemoryBlobStore()
	case config.DriverSQLite:
		blobs, err = NewSQLiteBlobStore(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}

	if cfg.Passphrase != "" {
		blobs, err = NewEncryptedBlobStore(ctx, blobs, crypto.NewKeyChainService(), cfg.Passphrase, log)
		if err != nil {
			return nil, fmt.Errorf("encryption init error: %w", err)
		}
	}

	return NewStoragesWithBlobs(blobs, log), nil
}

// NewStoragesWithBlobs wires repositories around an already-open blob
// store. Used by tests and by hosts supplying their own substrate.
func NewStoragesWithBlobs(blobs BlobStore, log *logger.Logger) *Storages {
	return &Storages{
		Blobs:    blobs,
		Notes:    NewNotesRepository(blobs, log),
		Settings: NewSettingsRepository(blobs, log),
		Session:  NewSessionRepository(blobs, log),
	}
}
