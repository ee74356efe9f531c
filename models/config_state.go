// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ConfigState is the canonical record of the resolved API configuration
// shared by every component of the client.
//
// A ConfigState is always replaced as a whole; its fields are never updated
// one by one.
type ConfigState struct {
	// APIBaseURL is the endpoint root used by outgoing enrollment requests.
	APIBaseURL string

	// IsLoaded reports whether APIBaseURL was sourced from the remote
	// configuration provider (true) or is the static fallback (false).
	IsLoaded bool

	// LastFetchedAt is the moment the last resolution completed.
	// The zero value means no resolution has happened yet.
	LastFetchedAt time.Time
}

// NewConfigState returns the initial record: the fallback URL, not loaded,
// never fetched.
func NewConfigState(defaultURL string) ConfigState {
	return ConfigState{APIBaseURL: defaultURL}
}

// Fetched reports whether LastFetchedAt has been set.
func (s ConfigState) Fetched() bool {
	return !s.LastFetchedAt.IsZero()
}
