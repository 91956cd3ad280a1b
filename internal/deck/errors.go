package deck

import (
	"errors"
	"fmt"
)

// ErrEmptyDeck is reported when a deck is built from no slides
var ErrEmptyDeck = errors.New("deck has no slides")

// ConfigurationError reports a deck that cannot be played. It is fatal at
// startup.
type ConfigurationError struct {
	// Index of the offending slide, -1 when the error concerns the whole deck
	Index   int
	Message string
	Cause   error
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("deck configuration error: %s", e.Message)
	}
	return fmt.Sprintf("deck configuration error at slide %d: %s", e.Index, e.Message)
}

// Unwrap returns the underlying error
func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

func newConfigurationError(index int, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Index:   index,
		Message: message,
		Cause:   cause,
	}
}
