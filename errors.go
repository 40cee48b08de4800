package strsearch

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports that a needle or one step of a chain had no match
	// in its confined window.
	ErrNotFound = errors.New("no match")

	// ErrInvalidInput is the root of every caller-contract violation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidWindow reports a window that is inverted, out of bounds or
	// splits a UTF-8 sequence.
	ErrInvalidWindow = fmt.Errorf("%w: invalid window", ErrInvalidInput)
	// ErrInvalidRange reports a range that cannot be sliced from the buffer.
	ErrInvalidRange = fmt.Errorf("%w: invalid range", ErrInvalidInput)
	// ErrEmptyNeedle reports an empty needle.
	ErrEmptyNeedle = fmt.Errorf("%w: empty needle", ErrInvalidInput)
	// ErrInvalidNeedle reports a needle that is not valid UTF-8.
	ErrInvalidNeedle = fmt.Errorf("%w: needle is not valid UTF-8", ErrInvalidInput)
	// ErrInvalidPosition reports a line/column position outside the buffer.
	ErrInvalidPosition = fmt.Errorf("%w: invalid position", ErrInvalidInput)
	// ErrEmptyGroup reports a marker group or sequence with no needles.
	ErrEmptyGroup = fmt.Errorf("%w: empty needle sequence", ErrInvalidInput)
	// ErrSequenceTooLong reports a sequence longer than WithMaxSequence allows.
	ErrSequenceTooLong = fmt.Errorf("%w: needle sequence too long", ErrInvalidInput)
	// ErrInvalidCount reports a non-positive occurrence count.
	ErrInvalidCount = fmt.Errorf("%w: occurrence count must be positive", ErrInvalidInput)
	// ErrInvalidBoundary reports a Boundary that is neither Include nor Exclude.
	ErrInvalidBoundary = fmt.Errorf("%w: invalid boundary", ErrInvalidInput)
	// ErrCrossedBounds reports an extraction whose left edge lies after its
	// right edge. It is always carried by a *BoundsError.
	ErrCrossedBounds = fmt.Errorf("%w: extraction bounds crossed", ErrInvalidInput)
)

// BoundsError describes an extraction whose computed edges crossed.
type BoundsError struct {
	Start Range // located start marker group
	End   Range // located end marker group
	Left  Offset
	Right Offset
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("extraction bounds crossed: left edge %d > right edge %d (start %s, end %s)",
		e.Left, e.Right, e.Start, e.End)
}

// Unwrap returns ErrCrossedBounds.
func (e *BoundsError) Unwrap() error {
	return ErrCrossedBounds
}

// IsNotFound reports whether err is a miss rather than a caller error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidInput reports whether err is a caller-contract violation.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
