package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "pipeline.joblib", cfg.Artifact.Path)
	assert.Equal(t, []string{"msgpack", "json"}, cfg.Artifact.Codecs)
	assert.True(t, cfg.Artifact.Required)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ARTIFACT_PATH", "/models/diamonds.msgpack")
	t.Setenv("ARTIFACT_CODECS", " json , yaml ,")
	t.Setenv("ARTIFACT_REQUIRED", "false")
	t.Setenv("LOGGER_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/models/diamonds.msgpack", cfg.Artifact.Path)
	assert.Equal(t, []string{"json", "yaml"}, cfg.Artifact.Codecs)
	assert.False(t, cfg.Artifact.Required)
	assert.Equal(t, "text", cfg.Logger.Format)
}
