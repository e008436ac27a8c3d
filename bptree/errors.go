package bptree

import (
	"errors"
	"fmt"
)

// MinBranchingFactor is the smallest accepted branching factor.
const MinBranchingFactor = 3

// ErrNilCompare is returned by NewFunc when no compare function is given.
var ErrNilCompare = errors.New("bptree: nil compare function")

// ErrInvalidBranchingFactor is returned when a tree is constructed with a
// branching factor below MinBranchingFactor.
type ErrInvalidBranchingFactor struct {
	BranchingFactor int
}

func (e *ErrInvalidBranchingFactor) Error() string {
	return fmt.Sprintf("bptree: illegal branching factor: %d", e.BranchingFactor)
}
