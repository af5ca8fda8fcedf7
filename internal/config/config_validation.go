// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the merged [StructuredConfig]. Only the log level can be
// wrong regardless of which binary consumes the config.
func (cfg *StructuredConfig) validate() error {
	if cfg.Log.Level == "" {
		return nil
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level)); err != nil {
		return ErrInvalidLogConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Workers.StatusPollInterval <= 0 || cfg.Workers.OverdueSweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level)); err != nil {
		return ErrInvalidLogConfigs
	}
	return nil
}
