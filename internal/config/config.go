// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied before any other source.
const (
	DefaultAPIURL               = "http://localhost:8000"
	DefaultRequestTimeout       = 15 * time.Second
	DefaultDSN                  = ":memory:"
	DefaultStatusPollInterval   = 4 * time.Second
	DefaultOverdueSweepInterval = time.Minute
	DefaultLogLevel             = "info"
	DefaultRecipient            = "+1 555 555 0100"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, an optional config file, environment variables (and a
// .env file) and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings of the desk itself.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend REST endpoint settings.
	Adapter Adapter `envPrefix:"API_"`

	// Storage holds the catalog database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds intervals of the background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// FilePath is the optional path to a JSON, YAML or TOML config file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds desk-level settings.
type App struct {
	// DefaultRecipient prefills the inbox recipient field when the selected
	// conversation has no phone number.
	// Env: APP_DEFAULT_RECIPIENT
	DefaultRecipient string `env:"DEFAULT_RECIPIENT"`
}

// Adapter holds settings of the backend REST client.
type Adapter struct {
	// HTTPAddress is the backend base URL, e.g. "http://localhost:8000".
	// A missing scheme defaults to http.
	// Env: API_URL
	HTTPAddress string `env:"URL"`

	// RequestTimeout bounds every backend request.
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the storage backends.
type Storage struct {
	// DB holds the catalog database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the catalog database.
type DB struct {
	// DSN is either a SQLite path (":memory:" by default, which resets on
	// every start) or a postgres:// URL.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds background job intervals.
type Workers struct {
	// StatusPollInterval is the fixed delay between two status fetches of a
	// tracked message.
	// Env: WORKERS_STATUS_POLL_INTERVAL
	StatusPollInterval time.Duration `env:"STATUS_POLL_INTERVAL"`

	// OverdueSweepInterval is how often scheduled follow-ups are checked for
	// passed due dates.
	// Env: WORKERS_OVERDUE_SWEEP_INTERVAL
	OverdueSweepInterval time.Duration `env:"OVERDUE_SWEEP_INTERVAL"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the log destination of the TUI client. Empty means a "logs"
	// file next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Defaults returns the configuration used when no source sets a value.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{DefaultRecipient: DefaultRecipient},
		Adapter: Adapter{
			HTTPAddress:    DefaultAPIURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Workers: Workers{
			StatusPollInterval:   DefaultStatusPollInterval,
			OverdueSweepInterval: DefaultOverdueSweepInterval,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources. Priority, lowest first:
//  1. Defaults
//  2. Config file (path resolved from the sources below)
//  3. Environment variables, including a .env file in the working directory
//  4. Command-line flags parsed from args
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withFlags(args).
		withFile().
		build()
}
