package strsearch

import (
	"fmt"

	"github.com/kpumuk/strsearch/internal/text"
)

// Offset is a byte index into a text buffer.
type Offset = text.ByteOffset

// Window is the half-open byte range [Start, End) a search may look in.
type Window = text.Span

// Range is the half-open byte range [Start, End) of a located match or an
// extracted span, in absolute buffer offsets.
type Range = text.Span

// Position is a 0-based line and byte column.
type Position = text.Point

// Whole returns the window covering all of s.
func Whole(s string) Window {
	return text.SpanOf(s)
}

// NewWindow returns the window [start, end). It is validated against the
// buffer by each operation, not here.
func NewWindow(start, end int) Window {
	return Window{Start: Offset(start), End: Offset(end)}
}

// Boundary selects whether a matched marker group is kept in an extracted
// range or stripped from it. The zero value is invalid.
type Boundary uint8

const (
	_ Boundary = iota
	// Include keeps the marker text in the extracted range.
	Include
	// Exclude strips the marker text, leaving only the interior.
	Exclude
)

func (b Boundary) String() string {
	switch b {
	case Include:
		return "include"
	case Exclude:
		return "exclude"
	default:
		return fmt.Sprintf("Boundary(%d)", uint8(b))
	}
}

func (b Boundary) validate(group string) error {
	if b != Include && b != Exclude {
		return fmt.Errorf("%w: %s group: %s", ErrInvalidBoundary, group, b)
	}
	return nil
}

// leftEdge maps a start marker match to the left edge of the output.
func (b Boundary) leftEdge(m Range) Offset {
	if b == Include {
		return m.Start
	}
	return m.End
}

// rightEdge maps an end marker match to the right edge of the output.
func (b Boundary) rightEdge(m Range) Offset {
	if b == Include {
		return m.End
	}
	return m.Start
}

// Output is the result of a bounded extraction. Text is a substring of the
// searched buffer and shares its memory.
type Output struct {
	Text  string
	Range Range
}

func (o Output) String() string {
	return o.Text
}
