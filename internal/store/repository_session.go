package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/akimenko/securevault/internal/logger"
)

type sessionRepository struct {
	blobs  BlobStore
	logger *logger.Logger
}

// NewSessionRepository returns a SessionRepository storing the persisted
// session-authenticated flag as a JSON boolean under KeySession.
func NewSessionRepository(blobs BlobStore, logger *logger.Logger) SessionRepository {
	return &sessionRepository{blobs: blobs, logger: logger}
}

func (r *sessionRepository) Load(ctx context.Context) (bool, error) {
	raw, err := r.blobs.Get(ctx, KeySession)
	if errors.Is(err, ErrBlobNotFound) {
		// Never written means never authenticated. Normal on a fresh
		// install, not a fault.
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var authenticated bool
	if err = json.Unmarshal([]byte(raw), &authenticated); err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.Load").
			Msg("failed to decode session flag")
		return false, fmt.Errorf("%w: decode session flag: %w", ErrCorruptBlob, err)
	}

	return authenticated, nil
}

func (r *sessionRepository) Save(ctx context.Context, authenticated bool) error {
	payload, err := json.Marshal(authenticated)
	if err != nil {
		return fmt.Errorf("encode session flag: %w", err)
	}

	if err = r.blobs.Set(ctx, KeySession, string(payload)); err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.Save").
			Bool("authenticated", authenticated).
			Msg("failed to persist session flag")
		return err
	}

	return nil
}
