package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, ":memory:", cfg.Storage.DB.DSN)
	assert.Equal(t, 4*time.Second, cfg.Workers.StatusPollInterval)
	assert.Equal(t, time.Minute, cfg.Workers.OverdueSweepInterval)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, DefaultRecipient, cfg.App.DefaultRecipient)
}

func TestGetClientConfig_Priority(t *testing.T) {
	path := writeTempConfig(t, "desk.json", `{
		"api": {"url": "http://file:1", "request_timeout": "7s"},
		"log": {"level": "warn"}
	}`)
	setEnvVars(t, map[string]string{
		"API_URL":   "http://env:2",
		"LOG_LEVEL": "error",
	})

	cfg, err := GetClientConfig([]string{"-config", path, "-log-level", "debug"})

	require.NoError(t, err)
	assert.Equal(t, "http://env:2", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestGetClientConfig_InvalidLogLevel(t *testing.T) {
	setEnvVars(t, map[string]string{"LOG_LEVEL": "shouting"})

	_, err := GetClientConfig(nil)

	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}

func TestGetClientConfigWithOverrides(t *testing.T) {
	setEnvVars(t, map[string]string{"API_URL": "http://env:2"})

	cfg, err := GetClientConfigWithOverrides(&StructuredConfig{
		Adapter: Adapter{RequestTimeout: 2 * time.Second},
	})

	require.NoError(t, err)
	assert.Equal(t, "http://env:2", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
}

func TestClientConfigValidate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Adapter: ClientAdapter{HTTPAddress: "http://localhost:8000", RequestTimeout: time.Second},
			Storage: ClientStorage{DB: ClientDB{DSN: ":memory:"}},
			Workers: ClientWorkers{StatusPollInterval: time.Second, OverdueSweepInterval: time.Second},
			Log:     ClientLog{Level: "info"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr error
	}{
		{"valid", func(*ClientConfig) {}, nil},
		{"blank url", func(c *ClientConfig) { c.Adapter.HTTPAddress = " " }, ErrInvalidAdapterConfigs},
		{"zero timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"empty dsn", func(c *ClientConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"zero poll", func(c *ClientConfig) { c.Workers.StatusPollInterval = 0 }, ErrInvalidWorkerConfigs},
		{"bad level", func(c *ClientConfig) { c.Log.Level = "nope" }, ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
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
