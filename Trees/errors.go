package Trees

import (
	"errors"
	"fmt"
)

var (
	// ErrCorrupt is the root of every structural panic raised by this package.
	ErrCorrupt = errors.New("tree structure is corrupt")
	// ErrLeaked is returned by Pool.Close when handles are still live.
	ErrLeaked = errors.New("pool has live handles")
)

// CorruptError is the value passed to panic when an operation finds the
// linkage in a state that no valid sequence of operations produces, for
// example after concurrent mutation, double insertion, or a comparator
// that isn't a total order. There is no safe way to continue after one.
type CorruptError struct {
	Op     string
	Handle uint64
	Msg    string
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("%s: handle %d: %s", e.Op, e.Handle, e.Msg)
}

func (e *CorruptError) Unwrap() error {
	return ErrCorrupt
}

func corrupt(op string, h uint64, msg string) *CorruptError {
	return &CorruptError{op, h, msg}
}
