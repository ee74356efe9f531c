// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remoteconfig

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_provider_mock.go -package=mock

// Source tells where a [Value] came from.
type Source int

const (
	// SourceStatic means neither the remote snapshot nor the defaults hold
	// the key; the value is the empty string.
	SourceStatic Source = iota
	// SourceDefault means the value comes from the defaults pushed with
	// SetDefaults.
	SourceDefault
	// SourceRemote means the value comes from the active remote snapshot.
	SourceRemote
)

func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceRemote:
		return "remote"
	default:
		return "static"
	}
}

// Value is a provider-resolved setting.
type Value struct {
	String string
	Source Source
}

// Provider is the contract of a remote configuration service. Any method may
// fail with a provider-specific error.
type Provider interface {
	// SetDefaults replaces the values returned for keys absent from the
	// active snapshot.
	SetDefaults(defaults map[string]string) error

	// FetchAndActivate retrieves the latest snapshot from the service and
	// makes it active. It reports true if a snapshot different from the
	// previously active one was activated.
	FetchAndActivate(ctx context.Context) (bool, error)

	// GetValue resolves key against the active snapshot, then the defaults.
	GetValue(key string) (Value, error)
}
