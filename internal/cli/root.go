// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements wactl, the command line companion of the desk. It
// talks to the same backend through the same services as the terminal UI.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-wa-desk/internal/adapter"
	"github.com/MKhiriev/go-wa-desk/internal/config"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/internal/service"
	"github.com/MKhiriev/go-wa-desk/models"
)

// globalFlags are the persistent flags shared by every command. Zero values
// leave the setting to the config file, environment or defaults.
type globalFlags struct {
	apiURL     string
	timeout    time.Duration
	configPath string
	logLevel   string
}

func (f globalFlags) overrides() *config.StructuredConfig {
	return &config.StructuredConfig{
		Adapter: config.Adapter{
			HTTPAddress:    f.apiURL,
			RequestTimeout: f.timeout,
		},
		Log:      config.Log{Level: f.logLevel},
		FilePath: f.configPath,
	}
}

// deps is filled by the root command before any subcommand runs.
type deps struct {
	cfg      *config.ClientConfig
	logger   *logger.Logger
	services *service.ClientServices
}

// NewRootCommand builds the wactl command tree.
func NewRootCommand(buildInfo models.BuildInfo) *cobra.Command {
	var (
		flags globalFlags
		rt    deps
	)

	root := &cobra.Command{
		Use:   "wactl",
		Short: "Send WhatsApp messages and follow their delivery from the shell",
		Long: `wactl sends messages through the desk backend, uploads media and
reports delivery and template review status.

Settings come from defaults, a config file, API_* / LOG_* environment
variables (a .env file is read too) and the flags below, in that order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// version must work without a reachable or configured backend
			if cmd.Name() == "version" {
				return nil
			}
			return rt.load(cmd, flags)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.apiURL, "api-url", "", "backend base URL (default "+config.DefaultAPIURL+")")
	pf.DurationVar(&flags.timeout, "timeout", 0, "timeout of every backend request (default "+config.DefaultRequestTimeout.String()+")")
	pf.StringVarP(&flags.configPath, "config", "c", "", "path to a JSON, YAML or TOML config file")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level written to stderr (default "+config.DefaultLogLevel+")")

	root.AddCommand(
		newSendCommand(&rt),
		newStatusCommand(&rt),
		newMediaCommand(&rt),
		newTemplateCommand(&rt),
		newVersionCommand(buildInfo),
	)

	return root
}

func (rt *deps) load(cmd *cobra.Command, flags globalFlags) error {
	cfg, err := config.GetClientConfigWithOverrides(flags.overrides())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.NewLogger("wactl", cfg.Log.Level)

	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create backend adapter: %w", err)
	}

	rt.cfg = cfg
	rt.logger = log
	rt.services = service.NewClientServices(nil, backend, cfg.Workers)

	cmd.SetContext(log.WithContext(cmd.Context()))
	log.Debug().Str("api_url", backend.BaseURL()).Str("command", cmd.CommandPath()).Msg("wactl configured")
	return nil
}
