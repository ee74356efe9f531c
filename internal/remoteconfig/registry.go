package remoteconfig

import (
	"fmt"
	"strings"
)

const (
	// NameAPIBaseURL is the logical name of the enrollment API endpoint root.
	NameAPIBaseURL = "API base URL"
	// KeyAPIBaseURL is the provider key holding the enrollment API endpoint
	// root.
	KeyAPIBaseURL = "api_base_url"
)

// Entry maps a logical setting name to its provider key and bundled default.
type Entry struct {
	LogicalName  string
	ProviderKey  string
	DefaultValue string
}

// Registry is an immutable set of [Entry] values indexed by logical name.
// Every logical name and every provider key appears exactly once.
type Registry struct {
	entries []Entry
	byName  map[string]Entry
}

// NewRegistry validates entries and builds a [Registry] from them.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		entries: make([]Entry, 0, len(entries)),
		byName:  make(map[string]Entry, len(entries)),
	}
	keys := make(map[string]struct{}, len(entries))

	for _, e := range entries {
		if strings.TrimSpace(e.LogicalName) == "" ||
			strings.TrimSpace(e.ProviderKey) == "" ||
			strings.TrimSpace(e.DefaultValue) == "" {
			return nil, fmt.Errorf("%w: %+v", ErrInvalidRegistryEntry, e)
		}
		if _, ok := r.byName[e.LogicalName]; ok {
			return nil, fmt.Errorf("%w: name %q", ErrDuplicateRegistryEntry, e.LogicalName)
		}
		if _, ok := keys[e.ProviderKey]; ok {
			return nil, fmt.Errorf("%w: key %q", ErrDuplicateRegistryEntry, e.ProviderKey)
		}

		keys[e.ProviderKey] = struct{}{}
		r.byName[e.LogicalName] = e
		r.entries = append(r.entries, e)
	}

	return r, nil
}

// DefaultRegistry returns the registry bundled with the client. It holds a
// single entry, the API base URL, whose fallback is defaultAPIBaseURL.
func DefaultRegistry(defaultAPIBaseURL string) (*Registry, error) {
	return NewRegistry(Entry{
		LogicalName:  NameAPIBaseURL,
		ProviderKey:  KeyAPIBaseURL,
		DefaultValue: defaultAPIBaseURL,
	})
}

// Lookup returns the entry registered under logicalName.
func (r *Registry) Lookup(logicalName string) (Entry, bool) {
	e, ok := r.byName[logicalName]
	return e, ok
}

// Defaults returns a fresh provider key to default value map, suitable for
// [Provider.SetDefaults].
func (r *Registry) Defaults() map[string]string {
	out := make(map[string]string, len(r.entries))
	for _, e := range r.entries {
		out[e.ProviderKey] = e.DefaultValue
	}
	return out
}

// Entries returns a copy of the registered entries in registration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}
