// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of the enrollment
// client and the mapping from request errors to them.
package app

import (
	"context"
	"errors"

	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/adapter"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/validators"
)

const (
	// MsgNotFound is shown when the service does not know the requested
	// registration number or resource.
	MsgNotFound = "not found"

	// MsgServiceUnreachable is shown when the service could not be reached
	// or did not answer in time.
	MsgServiceUnreachable = "service unreachable"

	// MsgServerError is shown for every other failure reported by the
	// service, including undecodable responses.
	MsgServerError = "server error"

	// MsgInvalidRequest is shown when the request was rejected before or by
	// the service because of its content.
	MsgInvalidRequest = "invalid request"

	// MsgCancelled is shown when the user aborted the operation.
	MsgCancelled = "cancelled"

	// MsgEnrolled and MsgNotEnrolled describe a registration lookup.
	MsgEnrolled    = "enrolled"
	MsgNotEnrolled = "not enrolled"
)

// ErrorMessage returns the message to show the user for err, or "" when err
// is nil.
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return MsgCancelled
	case errors.Is(err, adapter.ErrNotFound):
		return MsgNotFound
	case errors.Is(err, adapter.ErrServiceUnreachable), errors.Is(err, adapter.ErrTimeout):
		return MsgServiceUnreachable
	case errors.Is(err, adapter.ErrClientStatus),
		errors.Is(err, adapter.ErrEmptyRegistrationID),
		errors.Is(err, adapter.ErrEmptyDocumentContent),
		errors.Is(err, validators.ErrInvalidRequest):
		return MsgInvalidRequest
	default:
		return MsgServerError
	}
}
