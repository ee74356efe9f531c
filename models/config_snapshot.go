// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ConfigSnapshot is a set of remote configuration values as delivered by the
// remote configuration service.
type ConfigSnapshot struct {
	// Entries maps provider keys to their raw string values.
	Entries map[string]string `json:"entries"`

	// Fingerprint identifies the content of Entries. Two snapshots with the
	// same entries share a fingerprint regardless of key order.
	Fingerprint string `json:"-"`

	// FetchedAt is when the snapshot was received from the service.
	FetchedAt time.Time `json:"-"`
}

// Value returns the entry stored for key and whether it exists.
func (s ConfigSnapshot) Value(key string) (string, bool) {
	v, ok := s.Entries[key]
	return v, ok
}
