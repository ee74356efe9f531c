package adapter

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/utils"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/models"
)

func (a *httpEnrollmentAdapter) CheckEnrollment(ctx context.Context, registrationID string) (models.EnrollmentStatus, error) {
	registrationID = strings.TrimSpace(registrationID)
	if registrationID == "" {
		return models.EnrollmentStatus{}, ErrEmptyRegistrationID
	}

	target := a.endpoint("/enrollments/" + url.PathEscape(registrationID))
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(target)
	if err != nil {
		return models.EnrollmentStatus{}, mapTransportError(http.MethodGet, target, err)
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.EnrollmentStatus{RegistrationID: registrationID}, nil
		}
		return models.EnrollmentStatus{}, err
	}

	var status models.EnrollmentStatus
	if err = decodeBody(resp, &status); err != nil {
		return models.EnrollmentStatus{}, err
	}
	status.Exists = true
	if status.RegistrationID == "" {
		status.RegistrationID = registrationID
	}

	return status, nil
}

func (a *httpEnrollmentAdapter) Enroll(ctx context.Context, req models.EnrollmentRequest) (models.EnrollmentResult, error) {
	if strings.TrimSpace(req.RegistrationID) == "" {
		return models.EnrollmentResult{}, ErrEmptyRegistrationID
	}

	target := a.endpoint("/enrollments")
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(target)
	if err != nil {
		return models.EnrollmentResult{}, mapTransportError(http.MethodPost, target, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EnrollmentResult{}, err
	}

	var result models.EnrollmentResult
	if err = decodeBody(resp, &result); err != nil {
		return models.EnrollmentResult{}, err
	}

	return result, nil
}

func (a *httpEnrollmentAdapter) Verify(ctx context.Context, req models.VerificationRequest) (models.VerificationResult, error) {
	if strings.TrimSpace(req.RegistrationID) == "" {
		return models.VerificationResult{}, ErrEmptyRegistrationID
	}

	target := a.endpoint("/verifications")
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(target)
	if err != nil {
		return models.VerificationResult{}, mapTransportError(http.MethodPost, target, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VerificationResult{}, err
	}

	var result models.VerificationResult
	if err = decodeBody(resp, &result); err != nil {
		return models.VerificationResult{}, err
	}

	if result.Token != "" {
		claims, err := utils.ParseTokenClaims(result.Token)
		if err != nil {
			return models.VerificationResult{}, malformed(resp, err)
		}
		result.Subject = claims.Subject
		result.ExpiresAt = claims.ExpiresAt
	}

	return result, nil
}

func (a *httpEnrollmentAdapter) UploadDocument(ctx context.Context, doc models.DocumentUpload) (models.DocumentReceipt, error) {
	if strings.TrimSpace(doc.RegistrationID) == "" {
		return models.DocumentReceipt{}, ErrEmptyRegistrationID
	}
	if len(doc.Content) == 0 {
		return models.DocumentReceipt{}, ErrEmptyDocumentContent
	}

	contentType := doc.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(doc.Content)
	}
	fileName := doc.FileName
	if fileName == "" {
		fileName = "document"
	}

	target := a.endpoint("/documents")
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader(HeaderContentHash, utils.HashHex(doc.Content)).
		SetMultipartFormData(map[string]string{
			"registration_id": doc.RegistrationID,
			"document_type":   doc.DocumentType,
		}).
		SetMultipartField("file", fileName, contentType, bytes.NewReader(doc.Content)).
		Post(target)
	if err != nil {
		return models.DocumentReceipt{}, mapTransportError(http.MethodPost, target, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DocumentReceipt{}, err
	}

	var receipt models.DocumentReceipt
	if err = decodeBody(resp, &receipt); err != nil {
		return models.DocumentReceipt{}, err
	}

	return receipt, nil
}
