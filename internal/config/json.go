package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		HashKey string `json:"hash_key"`
	} `json:"app,omitempty"`

	RemoteConfig struct {
		Endpoint          string   `json:"endpoint"`
		DefaultAPIBaseURL string   `json:"default_api_base_url"`
		FetchTimeout      Duration `json:"fetch_timeout"`
		MinFetchInterval  Duration `json:"min_fetch_interval"`
	} `json:"remote_config,omitempty"`

	Adapter struct {
		RequestTimeout Duration          `json:"request_timeout"`
		DefaultHeaders map[string]string `json:"default_headers"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			HashKey: jsonCfg.App.HashKey,
		},
		RemoteConfig: RemoteConfig{
			Endpoint:          jsonCfg.RemoteConfig.Endpoint,
			DefaultAPIBaseURL: jsonCfg.RemoteConfig.DefaultAPIBaseURL,
			FetchTimeout:      time.Duration(jsonCfg.RemoteConfig.FetchTimeout),
			MinFetchInterval:  time.Duration(jsonCfg.RemoteConfig.MinFetchInterval),
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			DefaultHeaders: jsonCfg.Adapter.DefaultHeaders,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
