package allowlist

import (
	"errors"
	"fmt"

	"github.com/ytget/safe-browser/internal/model"
)

var (
	// ErrEmptyURL is reported when the user submits blank input
	ErrEmptyURL = model.ErrEmptyURL

	// ErrInvalidURL is reported when the input has inner whitespace or control characters
	ErrInvalidURL = model.ErrInvalidURL

	// ErrDuplicateURL is reported when the normalized URL is already listed
	ErrDuplicateURL = errors.New("this URL is already in the list")

	// ErrNoValidURLs is reported when an imported file has no http(s) lines
	ErrNoValidURLs = errors.New("no valid URLs found in file")
)

// ValidationError rejects user input; the list is left unchanged
type ValidationError struct {
	Input string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Input == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %q", e.Err.Error(), e.Input)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// PersistError means the durable write failed. The in-memory list already
// holds the new value and may diverge from storage until the next good write.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to save URLs: %v", e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// LoadError wraps a failed read of the durable record or of an import file
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// AccessDeniedError is returned when a URL does not match any allowed prefix
type AccessDeniedError struct {
	URL string
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("%s is not in the allowed list", e.URL)
}

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsPersist reports whether err is (or wraps) a PersistError
func IsPersist(err error) bool {
	var pe *PersistError
	return errors.As(err, &pe)
}
