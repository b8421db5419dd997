package config

import (
	"encoding/json"
	"os"
	"path/filepath"
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
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func isolatedBuilder(t *testing.T, args ...string) *configBuilder {
	t.Helper()
	clearEnvVars(t)
	prev := dotEnvFile
	dotEnvFile = filepath.Join(t.TempDir(), "none.env")
	t.Cleanup(func() { dotEnvFile = prev })

	b := newConfigBuilder()
	b.args = args
	return b
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "first"}},
		&StructuredConfig{App: App{TokenIssuer: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "second", cfg.App.TokenIssuer)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestBuilder_DefaultsOnly(t *testing.T) {
	cfg, err := isolatedBuilder(t).withDefaults().withEnv().withFlags().withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaultServerURL, cfg.Adapter.HTTPAddress)
	assert.Equal(t, defaultBucket, cfg.Storage.Files.Bucket)
	assert.Equal(t, BiometricFprintd, cfg.Gate.Biometric)
}

func TestBuilder_EnvFlagsJSONPriority(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_issuer": "from-json"},
	})

	b := isolatedBuilder(t, "-token-sign-key", "from-flags", "-c", jsonPath)
	t.Setenv("APP_TOKEN_SIGN_KEY", "from-env")
	t.Setenv("APP_TOKEN_ISSUER", "from-env")
	t.Setenv("APP_TOKEN_DURATION", "3h")

	cfg, err := b.withDefaults().withEnv().withFlags().withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, "from-flags", cfg.App.TokenSignKey)
	assert.Equal(t, "from-json", cfg.App.TokenIssuer)
	assert.Equal(t, 3*time.Hour, cfg.App.TokenDuration)
}

func TestBuilder_BadFlagsCollectError(t *testing.T) {
	_, err := isolatedBuilder(t, "-a", "bogus").withDefaults().withEnv().withFlags().build()
	assert.Error(t, err)
}

// ── views ─────────────────────────────────────────────────────────────────────

func TestValidateServer(t *testing.T) {
	cfg := defaults()
	assert.ErrorIs(t, cfg.validateServer(), ErrInvalidStorageConfigs)

	cfg.Storage.DB.DSN = "postgres://localhost/docvault"
	assert.ErrorIs(t, cfg.validateServer(), ErrInvalidAppConfigs)

	cfg.App.TokenSignKey = "secret"
	assert.NoError(t, cfg.validateServer())

	cfg.Server.GRPCAddress = "localhost:9090"
	cfg.Workers.HealthInterval = 0
	assert.ErrorIs(t, cfg.validateServer(), ErrInvalidWorkerConfigs)
	cfg.Workers.HealthInterval = time.Second

	cfg.Server.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validateServer(), ErrInvalidServerConfigs)
}

func TestClientConfig(t *testing.T) {
	cfg := defaults()
	client := newClientConfig(cfg)

	require.NoError(t, client.validate())
	assert.Equal(t, defaultLocalStorePath+".key", client.Storage.KeyPath)

	client.Gate.Biometric = "faceid"
	assert.ErrorIs(t, client.validate(), ErrInvalidGateConfigs)

	client.Gate.Biometric = BiometricNone
	client.Storage.Path = ":memory:"
	assert.ErrorIs(t, client.validate(), ErrInvalidStorageConfigs)

	client.Storage.Path = "vault.db"
	client.Workers.ConnectivityInterval = 0
	assert.ErrorIs(t, client.validate(), ErrInvalidWorkerConfigs)
}
