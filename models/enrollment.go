// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BiometricModality identifies the kind of biometric sample captured.
type BiometricModality string

const (
	ModalityFace        BiometricModality = "face"
	ModalityFingerprint BiometricModality = "fingerprint"
	ModalityIris        BiometricModality = "iris"
)

// BiometricSample is a single captured biometric template.
type BiometricSample struct {
	Modality BiometricModality `json:"modality"`
	// Data is the base64 encoded template produced by the capture device.
	Data string `json:"data"`
}

// EnrollmentStatus is the outcome of looking up a registration number.
type EnrollmentStatus struct {
	// Exists is false when the enrollment service does not know the
	// registration number.
	Exists bool `json:"-"`

	RegistrationID string              `json:"registration_id"`
	FullName       string              `json:"full_name,omitempty"`
	Status         string              `json:"status,omitempty"`
	Modalities     []BiometricModality `json:"modalities,omitempty"`
	EnrolledAt     time.Time           `json:"enrolled_at,omitempty"`
}

// EnrollmentRequest registers the biometric samples of a person.
type EnrollmentRequest struct {
	RegistrationID string            `json:"registration_id"`
	FullName       string            `json:"full_name"`
	Samples        []BiometricSample `json:"samples"`
}

// EnrollmentResult is returned by the enrollment service after a successful
// enrollment.
type EnrollmentResult struct {
	EnrollmentID   string    `json:"enrollment_id"`
	RegistrationID string    `json:"registration_id"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// VerificationRequest asks the service to match a live sample against the
// enrolled templates of RegistrationID.
type VerificationRequest struct {
	RegistrationID string          `json:"registration_id"`
	Sample         BiometricSample `json:"sample"`
}

// VerificationResult is the service's decision for a [VerificationRequest].
type VerificationResult struct {
	Matched bool    `json:"matched"`
	Score   float64 `json:"score"`
	// Token is a signed attestation of the verification, issued only when
	// Matched is true.
	Token string `json:"token,omitempty"`

	// Subject and ExpiresAt are read from Token's claims by the client.
	Subject   string    `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// DocumentUpload is an identity document attached to an enrollment.
type DocumentUpload struct {
	RegistrationID string
	DocumentType   string
	FileName       string
	ContentType    string
	Content        []byte
}

// DocumentReceipt acknowledges a stored document.
type DocumentReceipt struct {
	DocumentID     string    `json:"document_id"`
	RegistrationID string    `json:"registration_id"`
	Size           int64     `json:"size"`
	StoredAt       time.Time `json:"stored_at"`
}
