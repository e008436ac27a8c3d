package foodidx

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAttribute is reported for an attribute the index does not track.
	ErrUnknownAttribute = errors.New("unknown attribute")
)

// ErrInvalidBranchingFactor indicates an unusable branching factor.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrInvalidBranchingFactor struct {
	BranchingFactor int
	cause           error
}

func (e *ErrInvalidBranchingFactor) Error() string {
	return fmt.Sprintf("invalid branching factor: %d", e.BranchingFactor)
}

func (e *ErrInvalidBranchingFactor) Unwrap() error { return e.cause }
