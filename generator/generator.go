package generator

import (
	"fmt"
)

// Generator is the base capability shared by every distribution generator:
// a lazy, infinite, non-restartable sequence with a notion of "the value
// just produced".
type Generator interface {
	// NextString returns the next value in the distribution, as a string.
	NextString() string
	// LastString returns the value most recently generated.
	LastString() string
}

func NewErrorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
