// Package config provides configuration loading, merging, and validation
// for the desk binaries.
//
// Configuration is assembled from several sources (later sources override
// earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON, YAML or TOML config file
//  3. Environment variables, with a .env file filling unset variables
//  4. Command-line flags
//
// The main entry points are [GetClientConfig] for the TUI client and
// [GetClientConfigWithOverrides] for the wactl command line tool.
package config
