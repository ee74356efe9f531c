// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state holds the process-wide record of the resolved API
// configuration.
//
// A [Store] has a single writer, the configuration synchronizer, and any
// number of readers. Writes replace the whole [models.ConfigState] at once,
// so a reader never observes a base URL from one resolution paired with the
// timestamp of another.
package state

import (
	"sync/atomic"

	"github.com/mantrasuyog/EnrollmentSystem-sub001/models"
)

// Store is the canonical [models.ConfigState] holder. It is safe for
// concurrent use; Read never blocks.
type Store struct {
	initial models.ConfigState
	current atomic.Pointer[models.ConfigState]
}

// NewStore returns a Store holding the initial record for defaultURL.
func NewStore(defaultURL string) *Store {
	s := &Store{initial: models.NewConfigState(defaultURL)}
	s.Reset()
	return s
}

// Read returns the current record.
func (s *Store) Read() models.ConfigState {
	return *s.current.Load()
}

// Write replaces the current record with st.
func (s *Store) Write(st models.ConfigState) {
	s.current.Store(&st)
}

// Reset restores the initial record: default URL, not loaded, never fetched.
func (s *Store) Reset() {
	initial := s.initial
	s.current.Store(&initial)
}
