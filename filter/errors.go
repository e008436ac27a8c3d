package filter

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRule is returned when a rule does not have exactly three tokens.
	ErrMalformedRule = errors.New("malformed rule")

	// ErrInvalidComparator is returned for a comparator other than "<=", "==" or ">=".
	ErrInvalidComparator = errors.New("invalid comparator")

	// ErrInvalidValue is returned when the value is not a finite, non-negative number.
	ErrInvalidValue = errors.New("invalid value")
)

// ParseError describes a rule that could not be parsed.
//
// The sentinel cause can be matched via errors.Is.
type ParseError struct {
	Rule   string
	Reason string
	cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("filter: %q: %s", e.Rule, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.cause }
