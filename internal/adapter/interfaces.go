// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used to talk to the enrollment
// service.
//
// [EnrollmentAdapter] owns the long-lived HTTP client. Its base URL can be
// replaced at any time with SetBaseURL; every request resolves its absolute
// URL from the base URL current at the moment it is issued, so requests in
// flight are never redirected.
//
// Request failures are reported as [*RequestError] values that unwrap to one
// of the class sentinels in errors.go ([ErrServiceUnreachable], [ErrTimeout],
// [ErrClientStatus], [ErrServerStatus], [ErrMalformedResponse]) so callers can
// use [errors.Is] to tell them apart. Requests are never retried.
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/client_adapter_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/mantrasuyog/EnrollmentSystem-sub001/models"
)

// EnrollmentAdapter is the client of the enrollment service.
type EnrollmentAdapter interface {
	// SetBaseURL validates url and makes it the base of every request issued
	// after the call returns. An invalid url leaves the previous base in
	// place and returns [ErrInvalidBaseURL].
	SetBaseURL(url string) error

	// EffectiveBaseURL returns the base URL the next request will use.
	EffectiveBaseURL() string

	// CheckEnrollment looks up a registration number. An unknown number is
	// not an error: it yields Exists == false.
	CheckEnrollment(ctx context.Context, registrationID string) (models.EnrollmentStatus, error)

	// Enroll submits the biometric samples of a new person.
	Enroll(ctx context.Context, req models.EnrollmentRequest) (models.EnrollmentResult, error)

	// Verify matches a live sample against an enrollment. When the service
	// attaches a token, its subject and expiry are copied into the result.
	Verify(ctx context.Context, req models.VerificationRequest) (models.VerificationResult, error)

	// UploadDocument attaches an identity document to an enrollment. The
	// content is signed with the configured hash key.
	UploadDocument(ctx context.Context, doc models.DocumentUpload) (models.DocumentReceipt, error)
}

// RequestLogger observes outbound requests. Implementations must be safe for
// concurrent use and must not modify their arguments.
type RequestLogger interface {
	LogRequest(method, url, requestID string, payload any)
	LogResponse(method, url, requestID string, status int, payload []byte, elapsed time.Duration)
	LogFailure(method, url, requestID string, err error)
}
