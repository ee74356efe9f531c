package config

import (
	"fmt"
	"maps"
	"os"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey is the HMAC key used to sign uploaded documents.
	HashKey string
	// RegistrationID is an optional registration number to look up at start.
	RegistrationID string
}

// ClientRemoteConfig holds remote configuration service settings.
type ClientRemoteConfig struct {
	// Endpoint is the absolute URL of the remote configuration document.
	Endpoint string
	// DefaultAPIBaseURL is the single bundled fallback API base URL.
	DefaultAPIBaseURL string
	// FetchTimeout bounds a single remote fetch.
	FetchTimeout time.Duration
	// MinFetchInterval throttles network fetches; zero disables throttling.
	MinFetchInterval time.Duration
}

// ClientAdapter holds network settings used by the enrollment API client.
type ClientAdapter struct {
	// RequestTimeout is the fixed timeout for outbound requests.
	RequestTimeout time.Duration
	// DefaultHeaders are attached to every outbound request.
	DefaultHeaders map[string]string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the sqlite database file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often configuration is refreshed; zero
	// disables the refresh worker.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App          ClientApp
	RemoteConfig ClientRemoteConfig
	Adapter      ClientAdapter
	Storage      ClientStorage
	Workers      ClientWorkers
}

// GetClientConfig builds and validates the client configuration from the
// process environment and os.Args.
func GetClientConfig() (*ClientConfig, error) {
	return LoadClientConfig(os.Args[1:])
}

// LoadClientConfig is GetClientConfig with explicit command-line arguments.
//
// It loads the base config via [GetStructuredConfig], maps the fields into a
// [ClientConfig] and validates the result.
func LoadClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey:        cfg.App.HashKey,
			RegistrationID: cfg.App.RegistrationID,
		},
		RemoteConfig: ClientRemoteConfig{
			Endpoint:          cfg.RemoteConfig.Endpoint,
			DefaultAPIBaseURL: cfg.RemoteConfig.DefaultAPIBaseURL,
			FetchTimeout:      cfg.RemoteConfig.FetchTimeout,
			MinFetchInterval:  cfg.RemoteConfig.MinFetchInterval,
		},
		Adapter: ClientAdapter{
			RequestTimeout: cfg.Adapter.RequestTimeout,
			DefaultHeaders: maps.Clone(cfg.Adapter.DefaultHeaders),
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	return clientCfg, clientCfg.validate()
}
