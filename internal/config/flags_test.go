package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-remote-config", "http://cfg.example/doc",
		"-default-api-url", "http://default.example/api/v1",
		"-fetch-timeout", "7s",
		"-min-fetch-interval", "30m",
		"-request-timeout", "20s",
		"-hash-key", "secret",
		"-reg", "123456",
		"-d", "client.db",
		"-refresh-interval", "15m",
		"-config", "cfg.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://cfg.example/doc", cfg.RemoteConfig.Endpoint)
	assert.Equal(t, "http://default.example/api/v1", cfg.RemoteConfig.DefaultAPIBaseURL)
	assert.Equal(t, 7*time.Second, cfg.RemoteConfig.FetchTimeout)
	assert.Equal(t, 30*time.Minute, cfg.RemoteConfig.MinFetchInterval)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "secret", cfg.App.HashKey)
	assert.Equal(t, "123456", cfg.App.RegistrationID)
	assert.Equal(t, "client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 15*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, err := ParseFlags([]string{"-fetch-timeout", "soon"})
	assert.Error(t, err)
}
