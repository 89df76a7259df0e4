package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that building with no
// configs at all produces a config that fails driver validation.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, with earlier configs winning.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{Storage: Storage{Driver: DriverMemory}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
}

// TestBuild_EarlierConfigWins verifies that a field set by an earlier layer
// is not overwritten by a later one.
func TestBuild_EarlierConfigWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{Driver: DriverMemory, DSN: "first.db"}},
		&StructuredConfig{Storage: Storage{Driver: DriverSQLite, DSN: "second.db"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "first.db", cfg.Storage.DSN)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_FillsMissingValues verifies that the defaults layer
// provides a working sqlite configuration when nothing else is set.
func TestWithDefaults_FillsMissingValues(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "vault.db", cfg.Storage.DSN)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTimeout)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_MergesFileValues verifies that a JSON file referenced by an
// earlier layer is parsed and merged.
func TestWithJSON_MergesFileValues(t *testing.T) {
	var jsonCfg StructuredJSONConfig
	jsonCfg.Storage.Driver = DriverMemory
	jsonCfg.Session.IdleTimeout = Duration(5 * time.Minute)
	path := writeTempJSONConfig(t, jsonCfg)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 5*time.Minute, cfg.Session.IdleTimeout)
}

// TestWithJSON_MissingFile verifies that a dangling config path surfaces as
// a build error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "no/such/file.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
}

// TestWithJSON_NoPathIsNoop verifies that withJSON does nothing when no
// layer specified a file path.
func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withJSON()
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name: "sqlite with dsn",
			cfg:  StructuredConfig{Storage: Storage{Driver: DriverSQLite, DSN: "vault.db"}},
		},
		{
			name:    "sqlite without dsn",
			cfg:     StructuredConfig{Storage: Storage{Driver: DriverSQLite}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "memory without dsn",
			cfg:  StructuredConfig{Storage: Storage{Driver: DriverMemory}},
		},
		{
			name:    "unknown driver",
			cfg:     StructuredConfig{Storage: Storage{Driver: "postgres"}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "negative idle timeout",
			cfg: StructuredConfig{
				Storage: Storage{Driver: DriverMemory},
				Session: Session{IdleTimeout: -time.Minute},
			},
			wantErr: ErrInvalidSessionConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

// ── Duration ──────────────────────────────────────────────────────────────────

func TestDuration_UnmarshalJSON(t *testing.T) {
	t.Run("string form", func(t *testing.T) {
		var d Duration
		require.NoError(t, json.Unmarshal([]byte(`"30m"`), &d))
		assert.Equal(t, Duration(30*time.Minute), d)
	})

	t.Run("numeric form", func(t *testing.T) {
		var d Duration
		require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
		assert.Equal(t, Duration(time.Second), d)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		var d Duration
		require.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
	})
}
