package service

import (
	"context"
	"time"

	"github.com/mantrasuyog/EnrollmentSystem-sub001/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// BaseURLSetter is the part of the HTTP client the synchronizer drives.
// SetBaseURL must be safe to call while requests are in flight.
type BaseURLSetter interface {
	SetBaseURL(url string) error
}

// ConfigSynchronizer resolves the enrollment API base URL and keeps the
// shared state and the HTTP client in agreement on it.
type ConfigSynchronizer interface {
	// Bootstrap pushes the registry defaults into the provider, fetches and
	// activates the latest remote snapshot, resolves the API base URL, writes
	// the result to the shared state and applies it to the HTTP client.
	//
	// Bootstrap never fails. Provider errors and empty or invalid values fall
	// back to the registry default with IsLoaded == false. Concurrent calls
	// are not serialized; the last one to finish wins.
	Bootstrap(ctx context.Context) models.ConfigState

	// Resync applies the base URL currently held by the shared state to the
	// HTTP client without contacting the provider.
	Resync()

	// ResetToDefaults restores the initial shared state and resyncs the HTTP
	// client to it.
	ResetToDefaults()
}

// ConfigRefreshJob periodically re-runs ConfigSynchronizer.Bootstrap.
type ConfigRefreshJob interface {
	// Start launches the refresh loop, stopping any loop already running.
	// A non-positive interval leaves the job idle.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the refresh loop and waits for it to exit. Safe to call
	// when the job is not running.
	Stop()
}

// EnrollmentService is the application-facing view of the enrollment API.
type EnrollmentService interface {
	CheckEnrollment(ctx context.Context, registrationID string) (models.EnrollmentStatus, error)
	Enroll(ctx context.Context, req models.EnrollmentRequest) (models.EnrollmentResult, error)
	Verify(ctx context.Context, req models.VerificationRequest) (models.VerificationResult, error)
	UploadDocument(ctx context.Context, doc models.DocumentUpload) (models.DocumentReceipt, error)
}
