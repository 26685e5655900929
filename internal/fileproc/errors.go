package fileproc

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType is returned when the input extension has no strategy.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrInvalidEncoding is returned when the input is not valid UTF-8.
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
)

// TranslationError reports a fragment the translation service could not
// translate. The job it belongs to is aborted and no output is written.
type TranslationError struct {
	Fragment string
	Cause    error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translation failed: %v", e.Cause)
}

func (e *TranslationError) Unwrap() error {
	return e.Cause
}
