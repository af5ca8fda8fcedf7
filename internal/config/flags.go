package config

import (
	"flag"
	"io"
	"time"
)

// ParseFlags parses configuration flags from args. Unset flags leave the
// corresponding fields zero so lower-priority sources keep their values.
//
// Flags:
//
//	-api-url backend base URL (e.g., http://localhost:8000)
//	-request-timeout backend request timeout (e.g., "15s")
//	-d database DSN (":memory:", a SQLite path or postgres:// URL)
//	-poll-interval delivery status polling interval (e.g., "4s")
//	-sweep-interval overdue follow-up sweep interval (e.g., "1m")
//	-recipient default recipient of the inbox composer
//	-log-level zerolog level name
//	-log-file log file path
//	-c/-config JSON, YAML or TOML config file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		apiURL         string
		requestTimeout time.Duration
		databaseDSN    string
		pollInterval   time.Duration
		sweepInterval  time.Duration
		recipient      string
		logLevel       string
		logFile        string
		configPath     string
	)

	fs := flag.NewFlagSet("wadesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&apiURL, "api-url", "", "Backend base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Backend request timeout (e.g., 15s)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Delivery status polling interval (e.g., 4s)")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Overdue follow-up sweep interval (e.g., 1m)")
	fs.StringVar(&recipient, "recipient", "", "Default recipient")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{DefaultRecipient: recipient},
		Adapter: Adapter{
			HTTPAddress:    apiURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{DB: DB{DSN: databaseDSN}},
		Workers: Workers{
			StatusPollInterval:   pollInterval,
			OverdueSweepInterval: sweepInterval,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		FilePath: configPath,
	}, nil
}
