package validators

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest is wrapped by every validation failure.
var ErrInvalidRequest = errors.New("invalid request")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyRegistrationID = fmt.Errorf("%w: registration id is required", ErrInvalidRequest)
	ErrNoSamples           = fmt.Errorf("%w: at least one biometric sample is required", ErrInvalidRequest)
	ErrDuplicateModality   = fmt.Errorf("%w: duplicate biometric modality", ErrInvalidRequest)
	ErrInvalidModality     = fmt.Errorf("%w: invalid biometric modality", ErrInvalidRequest)
	ErrEmptySampleData     = fmt.Errorf("%w: biometric sample data is required", ErrInvalidRequest)
	ErrEmptyDocument       = fmt.Errorf("%w: document content is required", ErrInvalidRequest)
	ErrDocumentTooLarge    = fmt.Errorf("%w: document exceeds size limit", ErrInvalidRequest)
	ErrEmptyDocumentType   = fmt.Errorf("%w: document type is required", ErrInvalidRequest)
)
