// Package text defines byte offsets, half-open spans and line/column points
// over an immutable UTF-8 text buffer.
package text

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	errSpanOutOfBounds = errors.New("span exceeds buffer")
	errSplitRune       = errors.New("offset splits a UTF-8 sequence")
)

// ByteOffset is a byte index into a UTF-8 text buffer.
type ByteOffset int

// IsValid reports whether the offset is non-negative.
func (o ByteOffset) IsValid() bool {
	return o >= 0
}

// Span is a half-open byte range [Start, End).
type Span struct {
	Start ByteOffset // inclusive
	End   ByteOffset // exclusive
}

// SpanOf returns the span covering all of src.
func SpanOf(src string) Span {
	return Span{Start: 0, End: ByteOffset(len(src))}
}

// Validate reports an error if the span is not well-formed.
func (s Span) Validate() error {
	if !s.Start.IsValid() {
		return fmt.Errorf("invalid span start: %d", s.Start)
	}
	if !s.End.IsValid() {
		return fmt.Errorf("invalid span end: %d", s.End)
	}
	if s.End < s.Start {
		return fmt.Errorf("invalid span bounds: end (%d) < start (%d)", s.End, s.Start)
	}
	return nil
}

// ValidateIn reports an error unless s is well-formed, lies within src and
// both of its offsets fall on UTF-8 sequence boundaries of src.
func (s Span) ValidateIn(src string) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.End > ByteOffset(len(src)) {
		return fmt.Errorf("%w: %s > %d", errSpanOutOfBounds, s, len(src))
	}
	if !IsBoundary(src, s.Start) {
		return fmt.Errorf("%w: start %d", errSplitRune, s.Start)
	}
	if !IsBoundary(src, s.End) {
		return fmt.Errorf("%w: end %d", errSplitRune, s.End)
	}
	return nil
}

// IsBoundary reports whether off is a valid slicing point of src: either an
// end of the buffer or the first byte of a UTF-8 sequence.
func IsBoundary(src string, off ByteOffset) bool {
	if off == 0 || off == ByteOffset(len(src)) {
		return true
	}
	if off < 0 || off > ByteOffset(len(src)) {
		return false
	}
	return utf8.RuneStart(src[off])
}

// IsValid reports whether the span bounds are well-formed.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() && s.End >= s.Start
}

// IsEmpty reports whether the span covers zero bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Len returns the number of bytes covered by the span.
// For invalid spans, the result is undefined.
func (s Span) Len() ByteOffset {
	return s.End - s.Start
}

// Slice returns the part of src covered by s. The result shares memory with
// src. s must satisfy ValidateIn(src).
func (s Span) Slice(src string) string {
	return src[s.Start:s.End]
}

// From returns the tail of s starting at off.
func (s Span) From(off ByteOffset) Span {
	return Span{Start: off, End: s.End}
}

// Until returns the head of s ending at off.
func (s Span) Until(off ByteOffset) Span {
	return Span{Start: s.Start, End: off}
}

// Contains reports whether off is within the half-open span [Start, End).
func (s Span) Contains(off ByteOffset) bool {
	if !s.IsValid() || !off.IsValid() {
		return false
	}
	return s.Start <= off && off < s.End
}

// ContainsSpan reports whether other is fully contained within s.
func (s Span) ContainsSpan(other Span) bool {
	if !s.IsValid() || !other.IsValid() {
		return false
	}
	return s.Start <= other.Start && other.End <= s.End
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Point is a line/column location with a byte column.
type Point struct {
	Line   int // 0-based
	Column int // byte column
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
