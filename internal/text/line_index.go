package text

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// LineIndex maps byte offsets to line/column points over a text buffer.
//
// Lines are 0-based and columns count bytes. A '\n' belongs to the line it
// terminates; "\r\n" is treated the same way, the '\r' being an ordinary byte.
type LineIndex struct {
	src        string
	lineStarts []ByteOffset
}

var errNilLineIndex = errors.New("nil LineIndex")

// NewLineIndex builds an index over src.
func NewLineIndex(src string) *LineIndex {
	starts := make([]ByteOffset, 1, strings.Count(src, "\n")+1)
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, ByteOffset(i+1))
		}
	}
	return &LineIndex{
		src:        src,
		lineStarts: starts,
	}
}

// LineCount returns the number of logical lines in the source.
func (li *LineIndex) LineCount() int {
	if li == nil {
		return 0
	}
	return len(li.lineStarts)
}

// OffsetToPoint converts a byte offset to a point.
func (li *LineIndex) OffsetToPoint(off ByteOffset) (Point, error) {
	if li == nil {
		return Point{}, errNilLineIndex
	}
	if err := li.validateOffset(off); err != nil {
		return Point{}, err
	}

	line := li.lineForOffset(off)
	return Point{
		Line:   line,
		Column: int(off - li.lineStarts[line]),
	}, nil
}

// SpanToPoints converts both ends of s to points.
func (li *LineIndex) SpanToPoints(s Span) (start, end Point, err error) {
	if err := s.Validate(); err != nil {
		return Point{}, Point{}, err
	}
	if start, err = li.OffsetToPoint(s.Start); err != nil {
		return Point{}, Point{}, err
	}
	if end, err = li.OffsetToPoint(s.End); err != nil {
		return Point{}, Point{}, err
	}
	return start, end, nil
}

// PointToOffset converts a point back to a byte offset.
func (li *LineIndex) PointToOffset(p Point) (ByteOffset, error) {
	if li == nil {
		return 0, errNilLineIndex
	}
	if p.Line < 0 || p.Line >= li.LineCount() {
		return 0, fmt.Errorf("line out of range: %d", p.Line)
	}
	if p.Column < 0 {
		return 0, fmt.Errorf("column out of range: %d", p.Column)
	}

	start := li.lineStarts[p.Line]
	maxColumn := li.maxColumn(p.Line)
	if p.Column > maxColumn {
		return 0, fmt.Errorf("column out of range: line=%d column=%d max=%d", p.Line, p.Column, maxColumn)
	}
	return start + ByteOffset(p.Column), nil
}

func (li *LineIndex) validateOffset(off ByteOffset) error {
	if !off.IsValid() {
		return fmt.Errorf("offset out of range: %d", off)
	}
	if off > ByteOffset(len(li.src)) {
		return fmt.Errorf("offset out of range: %d > %d", off, len(li.src))
	}
	return nil
}

func (li *LineIndex) lineForOffset(off ByteOffset) int {
	// largest i such that lineStarts[i] <= off
	i, found := slices.BinarySearch(li.lineStarts, off)
	if found {
		return i
	}
	return i - 1
}

func (li *LineIndex) maxColumn(line int) int {
	start := li.lineStarts[line]
	if line+1 < len(li.lineStarts) {
		// The next line's start belongs to the next line, not this one.
		return int(li.lineStarts[line+1]-start) - 1
	}
	return int(ByteOffset(len(li.src)) - start)
}
