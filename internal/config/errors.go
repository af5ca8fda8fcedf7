package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid backend client settings
	// (for example, missing API URL or a non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty catalog DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive job interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrUnsupportedConfigFormat is returned for config files whose extension
	// is not .json, .yaml, .yml or .toml.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)
