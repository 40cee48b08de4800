package strsearch

import "log/slog"

// Extract returns the text between a start marker group and an end marker
// group.
//
// The start group is located with IndexSequence over w. The end group is then
// located with IndexSequence over the rest of w beginning at the start
// group's own match, so the end markers may begin inside the start match.
// The left edge is the start match's start (Include) or end (Exclude); the
// right edge is the end match's end (Include) or start (Exclude).
//
// A miss of either group is ErrNotFound. Edges that cross are reported as a
// *BoundsError.
func (s *Searcher) Extract(w Window, start []string, startBoundary Boundary, end []string, endBoundary Boundary) (Output, error) {
	if err := s.checkExtract(w, start, startBoundary, end, endBoundary); err != nil {
		return Output{}, err
	}

	sm, ok := s.chain(w, "start", start, forward)
	if !ok {
		return Output{}, ErrNotFound
	}
	em, ok := s.chain(w.From(sm.Start), "end", end, forward)
	if !ok {
		return Output{}, ErrNotFound
	}
	return s.output(sm, startBoundary, em, endBoundary)
}

// ExtractReverse is Extract scanning from the end of w. The end group is
// located first with IndexSequenceReverse over w, then the start group with
// IndexSequenceReverse over the part of w before the end match. Edges map
// exactly as in Extract and the output range is in buffer order.
func (s *Searcher) ExtractReverse(w Window, start []string, startBoundary Boundary, end []string, endBoundary Boundary) (Output, error) {
	if err := s.checkExtract(w, start, startBoundary, end, endBoundary); err != nil {
		return Output{}, err
	}

	em, ok := s.chain(w, "end", end, reverse)
	if !ok {
		return Output{}, ErrNotFound
	}
	sm, ok := s.chain(w.Until(em.Start), "start", start, reverse)
	if !ok {
		return Output{}, ErrNotFound
	}
	return s.output(sm, startBoundary, em, endBoundary)
}

func (s *Searcher) checkExtract(w Window, start []string, startBoundary Boundary, end []string, endBoundary Boundary) error {
	if err := s.checkWindow(w); err != nil {
		return err
	}
	if err := s.checkSequence("start", start); err != nil {
		return err
	}
	if err := startBoundary.validate("start"); err != nil {
		return err
	}
	if err := s.checkSequence("end", end); err != nil {
		return err
	}
	return endBoundary.validate("end")
}

func (s *Searcher) output(sm Range, startBoundary Boundary, em Range, endBoundary Boundary) (Output, error) {
	left := startBoundary.leftEdge(sm)
	right := endBoundary.rightEdge(em)
	if left > right {
		if s.debugging() {
			s.debug("extraction bounds crossed",
				slog.String("start", sm.String()),
				slog.String("end", em.String()),
				slog.Int("left", int(left)),
				slog.Int("right", int(right)),
			)
		}
		return Output{}, &BoundsError{Start: sm, End: em, Left: left, Right: right}
	}

	r := Range{Start: left, End: right}
	return Output{Text: r.Slice(s.text), Range: r}, nil
}
