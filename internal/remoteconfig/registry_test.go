package remoteconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r, err := DefaultRegistry("http://default.example/api/v1")
	require.NoError(t, err)

	e, ok := r.Lookup(NameAPIBaseURL)
	require.True(t, ok)
	assert.Equal(t, KeyAPIBaseURL, e.ProviderKey)
	assert.Equal(t, "http://default.example/api/v1", e.DefaultValue)
	assert.Equal(t, map[string]string{KeyAPIBaseURL: "http://default.example/api/v1"}, r.Defaults())
}

func TestRegistry_DefaultsIsACopy(t *testing.T) {
	r, err := DefaultRegistry("http://default.example/api/v1")
	require.NoError(t, err)

	d := r.Defaults()
	d[KeyAPIBaseURL] = "http://mutated.example"

	assert.Equal(t, "http://default.example/api/v1", r.Defaults()[KeyAPIBaseURL])
}

func TestNewRegistry_Rejects(t *testing.T) {
	valid := Entry{LogicalName: "a", ProviderKey: "a_key", DefaultValue: "x"}

	tests := []struct {
		name    string
		entries []Entry
		wantErr error
	}{
		{name: "blank default", entries: []Entry{{LogicalName: "a", ProviderKey: "a_key"}}, wantErr: ErrInvalidRegistryEntry},
		{name: "blank key", entries: []Entry{{LogicalName: "a", DefaultValue: "x"}}, wantErr: ErrInvalidRegistryEntry},
		{name: "duplicate name", entries: []Entry{valid, {LogicalName: "a", ProviderKey: "b_key", DefaultValue: "y"}}, wantErr: ErrDuplicateRegistryEntry},
		{name: "duplicate key", entries: []Entry{valid, {LogicalName: "b", ProviderKey: "a_key", DefaultValue: "y"}}, wantErr: ErrDuplicateRegistryEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.entries...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistry_EntriesKeepsOrder(t *testing.T) {
	r, err := NewRegistry(
		Entry{LogicalName: "b", ProviderKey: "b_key", DefaultValue: "2"},
		Entry{LogicalName: "a", ProviderKey: "a_key", DefaultValue: "1"},
	)
	require.NoError(t, err)

	entries := r.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].LogicalName)
	assert.Equal(t, "a", entries[1].LogicalName)
}

func TestFingerprint_OrderIndependent(t *testing.T) {
	a := Fingerprint(map[string]string{"x": "1", "y": "2"})
	b := Fingerprint(map[string]string{"y": "2", "x": "1"})

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, Fingerprint(map[string]string{"x": "1", "y": "3"}))
	// key/value boundaries are part of the digest
	assert.NotEqual(t, Fingerprint(map[string]string{"ab": "c"}), Fingerprint(map[string]string{"a": "bc"}))
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "remote", SourceRemote.String())
	assert.Equal(t, "default", SourceDefault.String())
	assert.Equal(t, "static", SourceStatic.String())
}
