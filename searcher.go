package strsearch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"unicode/utf8"

	"github.com/kpumuk/strsearch/internal/text"
)

// Searcher runs searches over one immutable text buffer. It is safe for
// concurrent use.
type Searcher struct {
	text  string
	opts  options
	lines func() *text.LineIndex
}

// New returns a Searcher over s.
func New(s string, opts ...Option) *Searcher {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Searcher{
		text: s,
		opts: o,
		lines: sync.OnceValue(func() *text.LineIndex {
			return text.NewLineIndex(s)
		}),
	}
}

// Text returns the searched buffer.
func (s *Searcher) Text() string {
	return s.text
}

// Whole returns the window covering the whole buffer.
func (s *Searcher) Whole() Window {
	return Whole(s.text)
}

// Slice returns the text covered by r, which must lie on UTF-8 boundaries
// inside the buffer.
func (s *Searcher) Slice(r Range) (string, error) {
	if err := r.ValidateIn(s.text); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	return r.Slice(s.text), nil
}

// Positions converts r to line/column positions of its two ends.
func (s *Searcher) Positions(r Range) (start, end Position, err error) {
	if err := r.ValidateIn(s.text); err != nil {
		return Position{}, Position{}, fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	return s.lines().SpanToPoints(r)
}

// Offset converts a line/column position back to a byte offset. The column
// counts bytes and must not point inside a multi-byte rune.
func (s *Searcher) Offset(p Position) (Offset, error) {
	off, err := s.lines().PointToOffset(p)
	if err != nil {
		return 0, fmt.Errorf("%w %s: %w", ErrInvalidPosition, p, err)
	}
	if !text.IsBoundary(s.text, off) {
		return 0, fmt.Errorf("%w %s: splits a UTF-8 sequence", ErrInvalidPosition, p)
	}
	return off, nil
}

type direction uint8

const (
	forward direction = iota
	reverse
)

func (d direction) String() string {
	if d == reverse {
		return "reverse"
	}
	return "forward"
}

func (s *Searcher) checkWindow(w Window) error {
	if err := w.ValidateIn(s.text); err != nil {
		return fmt.Errorf("%w %s: %w", ErrInvalidWindow, w, err)
	}
	return nil
}

// checkNeedle rejects needles that could match inside a multi-byte rune.
func checkNeedle(needle string) error {
	if needle == "" {
		return ErrEmptyNeedle
	}
	if !utf8.ValidString(needle) {
		return fmt.Errorf("%w: %q", ErrInvalidNeedle, needle)
	}
	return nil
}

func (s *Searcher) checkSequence(group string, needles []string) error {
	if len(needles) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyGroup, group)
	}
	if s.opts.maxSequence > 0 && len(needles) > s.opts.maxSequence {
		return fmt.Errorf("%w: %s has %d needles, limit %d", ErrSequenceTooLong, group, len(needles), s.opts.maxSequence)
	}
	for i, needle := range needles {
		if err := checkNeedle(needle); err != nil {
			return fmt.Errorf("%s[%d]: %w", group, i, err)
		}
	}
	return nil
}

func (s *Searcher) debugging() bool {
	return s.opts.logger.Enabled(context.Background(), slog.LevelDebug)
}

func (s *Searcher) debug(msg string, attrs ...slog.Attr) {
	s.opts.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
