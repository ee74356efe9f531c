// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides structural validation of outbound enrollment
// requests.
//
// A Validator checks that a request is complete enough to be worth sending:
// identifiers are present, samples carry a known modality and data, and
// documents are not empty. It does not apply business rules to registration
// numbers; the enrollment service owns those.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// When fields are given, only those fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
