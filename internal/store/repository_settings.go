package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akimenko/securevault/internal/logger"
	"github.com/akimenko/securevault/models"
)

type settingsRepository struct {
	blobs  BlobStore
	logger *logger.Logger
}

// NewSettingsRepository returns a SettingsRepository storing the settings
// object as one JSON document under KeySettings.
func NewSettingsRepository(blobs BlobStore, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{blobs: blobs, logger: logger}
}

func (r *settingsRepository) Load(ctx context.Context) (models.Settings, error) {
	raw, err := r.blobs.Get(ctx, KeySettings)
	if err != nil {
		// ErrBlobNotFound passes through: the service seeds defaults.
		return models.Settings{}, err
	}

	// Unknown fields from older or newer formats are ignored; absent
	// fields keep their defaults so documents merge forward cleanly.
	settings := models.DefaultSettings()
	if err = json.Unmarshal([]byte(raw), &settings); err != nil {
		r.logger.Err(err).
			Str("func", "settingsRepository.Load").
			Msg("failed to decode settings document")
		return models.Settings{}, fmt.Errorf("%w: decode settings: %w", ErrCorruptBlob, err)
	}

	return settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings models.Settings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err = r.blobs.Set(ctx, KeySettings, string(payload)); err != nil {
		r.logger.Err(err).
			Str("func", "settingsRepository.Save").
			Msg("failed to persist settings document")
		return err
	}

	return nil
}
