package strsearch

import (
	"fmt"
	"log/slog"
)

// IndexSequence locates needles in order. Each needle after the first is
// searched from the end of the previous match to the end of w. Only the last
// needle's range is returned; a miss at any step is ErrNotFound.
func (s *Searcher) IndexSequence(w Window, needles []string) (Range, error) {
	return s.sequence(w, "sequence", needles, forward)
}

// IndexSequenceReverse locates needles right to left. Each needle after the
// first is searched from the start of w to the start of the previous match.
func (s *Searcher) IndexSequenceReverse(w Window, needles []string) (Range, error) {
	return s.sequence(w, "sequence", needles, reverse)
}

// IndexNth returns the n-th non-overlapping occurrence of needle in w,
// counting from 1 at the start of the window.
func (s *Searcher) IndexNth(w Window, needle string, n int) (Range, error) {
	return s.nth(w, needle, n, forward)
}

// IndexNthReverse returns the n-th non-overlapping occurrence of needle in w,
// counting from 1 at the end of the window.
func (s *Searcher) IndexNthReverse(w Window, needle string, n int) (Range, error) {
	return s.nth(w, needle, n, reverse)
}

func (s *Searcher) nth(w Window, needle string, n int, dir direction) (Range, error) {
	if n < 1 {
		return Range{}, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}
	if err := s.checkWindow(w); err != nil {
		return Range{}, err
	}
	if err := checkNeedle(needle); err != nil {
		return Range{}, err
	}
	var m Range
	rest := w
	for i := range n {
		var ok bool
		if m, ok = s.find(rest, needle, dir); !ok {
			s.missed("occurrence", dir, i, needle, rest)
			return Range{}, ErrNotFound
		}
		rest = advance(rest, m, dir)
	}
	return m, nil
}

func (s *Searcher) sequence(w Window, group string, needles []string, dir direction) (Range, error) {
	if err := s.checkWindow(w); err != nil {
		return Range{}, err
	}
	if err := s.checkSequence(group, needles); err != nil {
		return Range{}, err
	}
	m, ok := s.chain(w, group, needles, dir)
	if !ok {
		return Range{}, ErrNotFound
	}
	return m, nil
}

// chain runs a validated sequence. Forward steps continue after the previous
// match, reverse steps continue before it, so matches never overlap.
func (s *Searcher) chain(w Window, group string, needles []string, dir direction) (Range, bool) {
	var m Range
	rest := w
	for i, needle := range needles {
		var ok bool
		if m, ok = s.find(rest, needle, dir); !ok {
			s.missed(group, dir, i, needle, rest)
			return Range{}, false
		}
		rest = advance(rest, m, dir)
	}
	return m, true
}

// advance drops m and everything already scanned from rest.
func advance(rest Window, m Range, dir direction) Window {
	if dir == reverse {
		return rest.Until(m.Start)
	}
	return rest.From(m.End)
}

func (s *Searcher) missed(group string, dir direction, step int, needle string, rest Window) {
	if !s.debugging() {
		return
	}
	s.debug("needle sequence missed",
		slog.String("group", group),
		slog.String("direction", dir.String()),
		slog.Int("step", step),
		slog.String("needle", needle),
		slog.String("window", rest.String()),
	)
}
