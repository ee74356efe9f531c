package utils

import (
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Clients returned by NewHTTPClient encode and decode JSON bodies with
// goccy/go-json.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().
//	    SetHeader("Accept", "application/json").
//	    Get("https://api.example.com/enrollments/123456")
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	return &HTTPClient{Client: client}
}
