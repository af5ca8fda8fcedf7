// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk shape of a config file. Durations are
// written as Go duration strings ("15s", "1m").
type StructuredFileConfig struct {
	App struct {
		DefaultRecipient string `json:"default_recipient" yaml:"default_recipient" toml:"default_recipient"`
	} `json:"app" yaml:"app" toml:"app"`

	API struct {
		URL            string `json:"url" yaml:"url" toml:"url"`
		RequestTimeout string `json:"request_timeout" yaml:"request_timeout" toml:"request_timeout"`
	} `json:"api" yaml:"api" toml:"api"`

	Storage struct {
		DSN string `json:"dsn" yaml:"dsn" toml:"dsn"`
	} `json:"storage" yaml:"storage" toml:"storage"`

	Workers struct {
		StatusPollInterval   string `json:"status_poll_interval" yaml:"status_poll_interval" toml:"status_poll_interval"`
		OverdueSweepInterval string `json:"overdue_sweep_interval" yaml:"overdue_sweep_interval" toml:"overdue_sweep_interval"`
	} `json:"workers" yaml:"workers" toml:"workers"`

	Log struct {
		Level string `json:"level" yaml:"level" toml:"level"`
		File  string `json:"file" yaml:"file" toml:"file"`
	} `json:"log" yaml:"log" toml:"log"`
}

// parseFile reads the config file at path, choosing the decoder by extension.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var fileCfg StructuredFileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &fileCfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fileCfg)
	case ".toml":
		err = toml.Unmarshal(data, &fileCfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return fileCfg.toStructured()
}

func (f *StructuredFileConfig) toStructured() (*StructuredConfig, error) {
	requestTimeout, err := parseDuration("api.request_timeout", f.API.RequestTimeout)
	if err != nil {
		return nil, err
	}
	pollInterval, err := parseDuration("workers.status_poll_interval", f.Workers.StatusPollInterval)
	if err != nil {
		return nil, err
	}
	sweepInterval, err := parseDuration("workers.overdue_sweep_interval", f.Workers.OverdueSweepInterval)
	if err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{DefaultRecipient: f.App.DefaultRecipient},
		Adapter: Adapter{
			HTTPAddress:    f.API.URL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{DB: DB{DSN: f.Storage.DSN}},
		Workers: Workers{
			StatusPollInterval:   pollInterval,
			OverdueSweepInterval: sweepInterval,
		},
		Log: Log{
			Level: f.Log.Level,
			File:  f.Log.File,
		},
	}, nil
}

func parseDuration(key, raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}
