package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidRemoteConfigs indicates invalid remote configuration
	// settings (for example, missing endpoint or unparsable fallback URL).
	ErrInvalidRemoteConfigs = errors.New("invalid remote config configuration")
	// ErrInvalidAdapterConfigs indicates invalid enrollment API transport
	// settings (for example, non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing hash key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, negative refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
