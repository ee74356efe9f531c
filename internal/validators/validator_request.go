package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/mantrasuyog/EnrollmentSystem-sub001/models"
)

// Field names accepted by [RequestValidator.Validate].
const (
	FieldRegistrationID = "registration_id"
	FieldSamples        = "samples"
	FieldSample         = "sample"
	FieldDocumentType   = "document_type"
	FieldContent        = "content"
)

// MaxDocumentSize is the largest document the client will upload.
const MaxDocumentSize = 10 << 20

var allowedModalities = []models.BiometricModality{
	models.ModalityFace,
	models.ModalityFingerprint,
	models.ModalityIris,
}

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EnrollmentRequest:
		return v.validateEnrollmentRequest(ctx, value, fields...)
	case *models.EnrollmentRequest:
		return v.validateEnrollmentRequest(ctx, *value, fields...)

	case models.VerificationRequest:
		return v.validateVerificationRequest(ctx, value, fields...)
	case *models.VerificationRequest:
		return v.validateVerificationRequest(ctx, *value, fields...)

	case models.DocumentUpload:
		return v.validateDocumentUpload(ctx, value, fields...)
	case *models.DocumentUpload:
		return v.validateDocumentUpload(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateEnrollmentRequest(_ context.Context, req models.EnrollmentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRegistrationID, FieldSamples}
	}

	for _, field := range fields {
		switch field {
		case FieldRegistrationID:
			if err := validateRegistrationID(req.RegistrationID); err != nil {
				return err
			}
		case FieldSamples:
			if len(req.Samples) == 0 {
				return ErrNoSamples
			}
			seen := make(map[models.BiometricModality]struct{}, len(req.Samples))
			for i, s := range req.Samples {
				if err := validateSample(s); err != nil {
					return fmt.Errorf("sample %d: %w", i, err)
				}
				if _, ok := seen[s.Modality]; ok {
					return fmt.Errorf("sample %d: %w: %s", i, ErrDuplicateModality, s.Modality)
				}
				seen[s.Modality] = struct{}{}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *RequestValidator) validateVerificationRequest(_ context.Context, req models.VerificationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRegistrationID, FieldSample}
	}

	for _, field := range fields {
		switch field {
		case FieldRegistrationID:
			if err := validateRegistrationID(req.RegistrationID); err != nil {
				return err
			}
		case FieldSample:
			if err := validateSample(req.Sample); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *RequestValidator) validateDocumentUpload(_ context.Context, doc models.DocumentUpload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRegistrationID, FieldDocumentType, FieldContent}
	}

	for _, field := range fields {
		switch field {
		case FieldRegistrationID:
			if err := validateRegistrationID(doc.RegistrationID); err != nil {
				return err
			}
		case FieldDocumentType:
			if strings.TrimSpace(doc.DocumentType) == "" {
				return ErrEmptyDocumentType
			}
		case FieldContent:
			if len(doc.Content) == 0 {
				return ErrEmptyDocument
			}
			if len(doc.Content) > MaxDocumentSize {
				return fmt.Errorf("%w: %d bytes", ErrDocumentTooLarge, len(doc.Content))
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func validateRegistrationID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyRegistrationID
	}
	return nil
}

func validateSample(s models.BiometricSample) error {
	if !slices.Contains(allowedModalities, s.Modality) {
		return fmt.Errorf("%w: %q", ErrInvalidModality, s.Modality)
	}
	if strings.TrimSpace(s.Data) == "" {
		return ErrEmptySampleData
	}
	return nil
}
