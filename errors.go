package msysmake

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRequiredValue indicates a required definition is absent
	ErrMissingRequiredValue = errors.New("missing required value")

	// ErrToolchainIncomplete indicates the toolchain is missing a program after language enablement
	ErrToolchainIncomplete = errors.New("toolchain incomplete")

	// ErrUnsupportedLanguage indicates the engine cannot enable the requested language
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrInvalidDefinition indicates a malformed definition on the command line or in a file
	ErrInvalidDefinition = errors.New("invalid definition")
)

// Error wraps an error with the operation and definition key it concerns.
type Error struct {
	Op  string // Operation that failed
	Key string // Definition key if applicable
	Err error  // Underlying error
}

func (e *Error) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
