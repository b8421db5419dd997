package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or bucket).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid listen settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidGateConfigs indicates an invalid unlock gate policy.
	ErrInvalidGateConfigs = errors.New("invalid gate configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero connectivity interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
