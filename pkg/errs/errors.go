package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer         = http.StatusInternalServerError
	ErrStatusClient                 = http.StatusBadRequest
	ErrStatusNotFound               = http.StatusNotFound
	ErrStatusFileSizeExceedingLimit = http.StatusRequestEntityTooLarge
	ErrStatusBadGateway             = http.StatusBadGateway
	ErrStatusServiceUnavailable     = http.StatusServiceUnavailable
)

var (
	ErrInternalServer     = errors.New("Internal server error")
	ErrClient             = errors.New("Bad request")
	ErrFormNotFound       = errors.New("Form session not found")
	ErrNotAnImage         = errors.New("Uploaded file is not an image")
	ErrFileTooLarge       = errors.New("Uploaded file exceeds the size limit")
	ErrIncompleteProduct  = errors.New("Product form is missing required fields")
	ErrRemoteRequest      = errors.New("Remote API request failed")
	ErrRemoteUnavailable  = errors.New("Remote API is temporarily unavailable")
	ErrMissingIdentifier  = errors.New("Identifier is required")
	ErrEmptyUploadRequest = errors.New("No files were uploaded")
)

var errorMap = map[error]int{
	ErrInternalServer:     ErrStatusInternalServer,
	ErrClient:             ErrStatusClient,
	ErrFormNotFound:       ErrStatusNotFound,
	ErrNotAnImage:         ErrStatusClient,
	ErrFileTooLarge:       ErrStatusFileSizeExceedingLimit,
	ErrIncompleteProduct:  ErrStatusClient,
	ErrRemoteRequest:      ErrStatusBadGateway,
	ErrRemoteUnavailable:  ErrStatusServiceUnavailable,
	ErrMissingIdentifier:  ErrStatusClient,
	ErrEmptyUploadRequest: ErrStatusClient,
}

// GetErrorStatusCode resolves wrapped errors too, so callers may add context with %w.
func GetErrorStatusCode(err error) int {
	if errStatusCode, ok := errorMap[err]; ok {
		return errStatusCode
	}

	for target, errStatusCode := range errorMap {
		if errors.Is(err, target) {
			return errStatusCode
		}
	}

	return errorMap[ErrInternalServer]
}
