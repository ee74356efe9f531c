package remoteconfig

import "errors"

var (
	// ErrFetchFailed indicates that the remote configuration service could
	// not be reached or answered with a non-2xx status.
	ErrFetchFailed = errors.New("remote config fetch failed")
	// ErrMalformedSnapshot indicates that the service answered with a body
	// that is not a valid snapshot document.
	ErrMalformedSnapshot = errors.New("malformed remote config snapshot")
	// ErrUnknownKey is returned by GetValue for an empty key.
	ErrUnknownKey = errors.New("unknown remote config key")
	// ErrEmptyEndpoint is returned by NewHTTPProvider when no endpoint is
	// configured.
	ErrEmptyEndpoint = errors.New("empty remote config endpoint")
	// ErrInvalidRegistryEntry is returned by NewRegistry for entries with a
	// blank name, key or default.
	ErrInvalidRegistryEntry = errors.New("invalid registry entry")
	// ErrDuplicateRegistryEntry is returned by NewRegistry when a logical
	// name or provider key is registered twice.
	ErrDuplicateRegistryEntry = errors.New("duplicate registry entry")
)
