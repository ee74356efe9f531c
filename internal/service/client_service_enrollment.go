package service

import (
	"context"

	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/adapter"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/logger"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/validators"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/models"
)

type enrollmentService struct {
	adapter   adapter.EnrollmentAdapter
	validator validators.Validator
	logger    *logger.Logger
}

// NewEnrollmentService wraps enrollmentAdapter. Requests are checked with
// validator before they are sent. Adapter errors are returned unchanged so
// callers can classify them with errors.Is against the adapter sentinels.
func NewEnrollmentService(enrollmentAdapter adapter.EnrollmentAdapter, validator validators.Validator, log *logger.Logger) EnrollmentService {
	return &enrollmentService{
		adapter:   enrollmentAdapter,
		validator: validator,
		logger:    log.Component("enrollment"),
	}
}

func (s *enrollmentService) CheckEnrollment(ctx context.Context, registrationID string) (models.EnrollmentStatus, error) {
	status, err := s.adapter.CheckEnrollment(ctx, registrationID)
	if err != nil {
		s.logger.Err(err).Str("registration_id", registrationID).Msg("check enrollment failed")
		return models.EnrollmentStatus{}, err
	}

	s.logger.Debug().
		Str("registration_id", registrationID).
		Bool("exists", status.Exists).
		Msg("enrollment checked")
	return status, nil
}

func (s *enrollmentService) Enroll(ctx context.Context, req models.EnrollmentRequest) (models.EnrollmentResult, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.EnrollmentResult{}, err
	}

	result, err := s.adapter.Enroll(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("registration_id", req.RegistrationID).Msg("enroll failed")
		return models.EnrollmentResult{}, err
	}

	s.logger.Info().
		Str("registration_id", req.RegistrationID).
		Str("enrollment_id", result.EnrollmentID).
		Int("samples", len(req.Samples)).
		Msg("enrolled")
	return result, nil
}

func (s *enrollmentService) Verify(ctx context.Context, req models.VerificationRequest) (models.VerificationResult, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.VerificationResult{}, err
	}

	result, err := s.adapter.Verify(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("registration_id", req.RegistrationID).Msg("verify failed")
		return models.VerificationResult{}, err
	}

	s.logger.Info().
		Str("registration_id", req.RegistrationID).
		Bool("matched", result.Matched).
		Float64("score", result.Score).
		Msg("verified")
	return result, nil
}

func (s *enrollmentService) UploadDocument(ctx context.Context, doc models.DocumentUpload) (models.DocumentReceipt, error) {
	if err := s.validator.Validate(ctx, doc); err != nil {
		return models.DocumentReceipt{}, err
	}

	receipt, err := s.adapter.UploadDocument(ctx, doc)
	if err != nil {
		s.logger.Err(err).Str("registration_id", doc.RegistrationID).Msg("document upload failed")
		return models.DocumentReceipt{}, err
	}

	s.logger.Info().
		Str("registration_id", doc.RegistrationID).
		Str("document_id", receipt.DocumentID).
		Msg("document uploaded")
	return receipt, nil
}
