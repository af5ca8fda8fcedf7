package config

import (
	"fmt"
	"time"
)

// ClientApp holds desk-level settings used by the UI.
type ClientApp struct {
	// DefaultRecipient prefills the inbox recipient input.
	DefaultRecipient string
}

// ClientAdapter holds network settings used by the backend REST client.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL.
	HTTPAddress string
	// RequestTimeout is the timeout of every outbound request.
	RequestTimeout time.Duration
}

// ClientDB contains catalog database connection settings.
type ClientDB struct {
	// DSN is the SQLite path or PostgreSQL URL.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds catalog database settings.
	DB ClientDB
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// StatusPollInterval is the delay between two status fetches.
	StatusPollInterval time.Duration
	// OverdueSweepInterval is how often follow-ups are checked for overdue.
	OverdueSweepInterval time.Duration
}

// ClientLog contains logger settings.
type ClientLog struct {
	Level string
	File  string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Log     ClientLog
}

// GetClientConfig builds and validates the client configuration, reading
// flags from args (usually os.Args[1:]).
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

// GetClientConfigWithOverrides builds the client configuration from defaults,
// config file, environment, and the non-zero fields of overrides. It is used
// by commands whose flags are parsed by cobra rather than the flag package.
func GetClientConfigWithOverrides(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withOverrides(overrides).
		withFile().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			DefaultRecipient: cfg.App.DefaultRecipient,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			StatusPollInterval:   cfg.Workers.StatusPollInterval,
			OverdueSweepInterval: cfg.Workers.OverdueSweepInterval,
		},
		Log: ClientLog{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
		},
	}

	return clientCfg, clientCfg.validate()
}
