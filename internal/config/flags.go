package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-remote-config      remote configuration document URL
//	-default-api-url    fallback enrollment API base URL
//	-fetch-timeout      remote configuration fetch timeout (e.g. "10s")
//	-min-fetch-interval minimum interval between remote fetches (e.g. "1h")
//	-request-timeout    enrollment API request timeout (e.g. "30s")
//	-hash-key           document signing key
//	-reg                registration number to look up
//	-d                  local database path
//	-refresh-interval   periodic configuration refresh (e.g. "15m")
//	-c/-config          json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		endpoint         string
		defaultAPIURL    string
		fetchTimeout     time.Duration
		minFetchInterval time.Duration
		requestTimeout   time.Duration
		hashKey          string
		registrationID   string
		databaseDSN      string
		refreshInterval  time.Duration
		jsonConfigPath   string
	)

	fs := flag.NewFlagSet("enrollment-client", flag.ContinueOnError)
	fs.StringVar(&endpoint, "remote-config", "", "Remote configuration document URL")
	fs.StringVar(&defaultAPIURL, "default-api-url", "", "Fallback enrollment API base URL")
	fs.DurationVar(&fetchTimeout, "fetch-timeout", 0, "Remote configuration fetch timeout (e.g., 10s)")
	fs.DurationVar(&minFetchInterval, "min-fetch-interval", 0, "Minimum interval between remote fetches (e.g., 1h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Document signing key")
	fs.StringVar(&registrationID, "reg", "", "Registration number to look up")
	fs.StringVar(&databaseDSN, "d", "", "Local database path")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Configuration refresh interval (e.g., 15m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HashKey:        hashKey,
			RegistrationID: registrationID,
		},
		RemoteConfig: RemoteConfig{
			Endpoint:          endpoint,
			DefaultAPIBaseURL: defaultAPIURL,
			FetchTimeout:      fetchTimeout,
			MinFetchInterval:  minFetchInterval,
		},
		Adapter: Adapter{
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
