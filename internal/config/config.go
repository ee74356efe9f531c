// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the raw configuration container populated by each
// source before merging.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// RemoteConfig holds the settings of the remote configuration service
	// and the bundled fallback values.
	RemoteConfig RemoteConfig `envPrefix:"REMOTE_CONFIG_"`

	// Adapter holds the enrollment API transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of environment variables and flags.
	// Env: CONFIG, flags: -c / -config
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used to sign uploaded documents.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// RegistrationID, when set, makes the client look up this registration
	// number once configuration is bootstrapped. Flag only: -reg
	RegistrationID string
}

// RemoteConfig holds the remote configuration service settings.
type RemoteConfig struct {
	// Endpoint is the absolute URL of the remote configuration document.
	// Env: REMOTE_CONFIG_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// DefaultAPIBaseURL is the bundled fallback for the enrollment API base
	// URL, used until (and whenever) no remote value is available.
	// Env: REMOTE_CONFIG_DEFAULT_API_BASE_URL
	DefaultAPIBaseURL string `env:"DEFAULT_API_BASE_URL"`

	// FetchTimeout bounds a single fetch of the remote document.
	// Env: REMOTE_CONFIG_FETCH_TIMEOUT
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT"`

	// MinFetchInterval throttles network fetches; zero fetches every time.
	// Env: REMOTE_CONFIG_MIN_FETCH_INTERVAL
	MinFetchInterval time.Duration `env:"MIN_FETCH_INTERVAL"`
}

// Adapter holds the outbound enrollment API transport settings.
type Adapter struct {
	// RequestTimeout is the fixed timeout of every enrollment API request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// DefaultHeaders are sent with every enrollment API request.
	// Env: ADAPTER_DEFAULT_HEADERS in "Key:Value,Key2:Value2" form
	DefaultHeaders map[string]string `env:"DEFAULT_HEADERS"`
}

// Storage groups the configuration of the local storage backends.
type Storage struct {
	// DB holds the local sqlite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local sqlite database.
type DB struct {
	// DSN is the sqlite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval is how often remote configuration is re-bootstrapped;
	// zero disables periodic refresh.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Built-in defaults, applied before any other source.
const (
	DefaultAPIBaseURL     = "http://localhost:8080/api/v1"
	DefaultFetchTimeout   = 10 * time.Second
	DefaultRequestTimeout = 30 * time.Second
	DefaultDSN            = "enrollment-client.db"
	DefaultEnvFile        = ".env"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		RemoteConfig: RemoteConfig{
			DefaultAPIBaseURL: DefaultAPIBaseURL,
			FetchTimeout:      DefaultFetchTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources
// using args as the command-line arguments (without the program name).
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
