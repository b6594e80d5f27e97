package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_MergesInOrder(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:     App{TokenIssuer: "from-env"},
			Storage: StorageConfig{DatabaseDSN: "postgres://env"},
		},
		&StructuredConfig{
			App:    App{TokenIssuer: "from-flags", TokenDuration: time.Hour},
			Server: Server{HTTPAddress: "localhost:8080"},
		},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	// mergo keeps the first non-zero value, so the env entry wins where
	// both sources set a field.
	assert.Equal(t, "from-env", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://env", cfg.Storage.DatabaseDSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

func TestConfigBuilder_PropagatesError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	_, err := b.build()

	require.ErrorIs(t, err, assert.AnError)
}

func TestConfigBuilder_WithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestConfigBuilder_WithJSON_MissingFileFails(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	b.withJSON()

	require.Error(t, b.err)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := &ClientConfig{
		ServerAddress: "http://localhost:8080",
		CachePath:     "/tmp/drafts.db",
	}
	require.NoError(t, valid.validate())

	noServer := &ClientConfig{CachePath: "/tmp/drafts.db"}
	require.ErrorIs(t, noServer.validate(), ErrInvalidClientConfigs)

	noCache := &ClientConfig{ServerAddress: "http://localhost:8080"}
	require.ErrorIs(t, noCache.validate(), ErrInvalidStorageConfigs)
}
