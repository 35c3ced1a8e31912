package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-vault/internal/crypto"
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

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{KDFIterations: crypto.DefaultIterations},
		Storage: Storage{
			DSN:         "vault.db",
			SaltKey:     DefaultSaltKey,
			EnvelopeKey: DefaultEnvelopeKey,
		},
	}
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

// TestBuild_EmptyBuilder_FailsValidation verifies that a builder without any
// layer produces a config that does not pass validation.
func TestBuild_EmptyBuilder_FailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
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

// TestBuild_FirstNonZeroWins verifies that earlier layers take precedence and
// later layers only fill what is still empty.
func TestBuild_FirstNonZeroWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DSN: "env.db"}},
		&StructuredConfig{Storage: Storage{DSN: "flag.db"}, App: App{LogFile: "flag.log"}},
		validConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env.db", cfg.Storage.DSN)
	assert.Equal(t, "flag.log", cfg.App.LogFile)
	assert.Equal(t, DefaultSaltKey, cfg.Storage.SaltKey)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_ProducesValidConfig verifies that defaults alone are enough
// to start the application.
func TestWithDefaults_ProducesValidConfig(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, crypto.DefaultIterations, cfg.App.KDFIterations)
	assert.Equal(t, DefaultAutoLockAfter, cfg.App.AutoLockAfter)
	assert.NotEmpty(t, cfg.App.LogFile)
	assert.NotEmpty(t, cfg.Storage.DSN)
	assert.Equal(t, DefaultSaltKey, cfg.Storage.SaltKey)
	assert.Equal(t, DefaultEnvelopeKey, cfg.Storage.EnvelopeKey)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("STORAGE_DSN", "bolt:///tmp/env.bolt")
	t.Setenv("APP_AUTO_LOCK_AFTER", "90s")

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "bolt:///tmp/env.bolt", b.configs[0].Storage.DSN)
	assert.Equal(t, 90*time.Second, b.configs[0].App.AutoLockAfter)
}

// TestWithEnv_SetsErrorOnBadValue verifies that an unparsable value is
// recorded and nothing is appended.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("APP_KDF_ITERATIONS", "many")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

// TestWithFlags_UnknownFlag verifies that an unknown flag sets b.err.
func TestWithFlags_UnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-no-such-flag"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.DSN = "json.db"
	payload.App.AutoLockAfter = Duration(time.Minute)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json.db", b.configs[1].Storage.DSN)
	assert.Equal(t, time.Minute, b.configs[1].App.AutoLockAfter)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.DSN = "last-wins.db"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins.db", b.configs[2].Storage.DSN)
}

// ── full chain ────────────────────────────────────────────────────────────────

// TestChain_EnvOverridesFlagsOverridesJSON verifies source priority.
func TestChain_EnvOverridesFlagsOverridesJSON(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.DSN = "json.db"
	payload.Storage.SaltKey = "json.salt"
	payload.App.LogFile = "json.log"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("STORAGE_DSN", "env.db")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-d", "flag.db", "-salt-key", "flag.salt", "-c", path}).
		withJSON().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "env.db", cfg.Storage.DSN)
	assert.Equal(t, "flag.salt", cfg.Storage.SaltKey)
	assert.Equal(t, "json.log", cfg.App.LogFile)
	assert.Equal(t, DefaultEnvelopeKey, cfg.Storage.EnvelopeKey)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "too few kdf iterations",
			mutate:  func(cfg *StructuredConfig) { cfg.App.KDFIterations = 1000 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty salt key",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.SaltKey = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "same keys",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.EnvelopeKey = cfg.Storage.SaltKey },
			wantErr: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
