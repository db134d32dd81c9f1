// Package apperrors defines the error values handlers translate into
// HTTP statuses. Everything not listed here surfaces as a generic 500.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnknownAccount     = errors.New("user not found")
	ErrDuplicateContact   = errors.New("contact already exists")
	ErrInterviewNotFound  = errors.New("interview not found")
)

// UnsupportedFileTypeError reports an upload whose declared media type
// is not one the extractor can handle. The type string comes straight
// from the request; no sniffing is done.
type UnsupportedFileTypeError struct {
	MimeType string
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.MimeType)
}
