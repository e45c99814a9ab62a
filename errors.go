// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched (via errors.Is) by every error returned from
// checked element access with an index outside the live range.
var ErrOutOfRange = errors.New("index out of range")

// OutOfRangeError reports a checked access past the end of a Vector
type OutOfRangeError struct {
	Index uint
	Size  uint
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for vector of size %d", e.Index, e.Size)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

func errShortAllocation(want, got uint) string {
	return fmt.Sprintf("allocator returned %d slots, %d requested", got, want)
}

// precondition traps caller contract violations.  These are bugs in the
// caller and are not reported as errors.
func precondition(ok bool, format string, args ...interface{}) {
	if !ok {
		panic(fmt.Sprintf(format, args...))
	}
}
