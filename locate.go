package strsearch

import "strings"

// Index returns the first occurrence of needle inside w.
func (s *Searcher) Index(w Window, needle string) (Range, error) {
	return s.locate(w, needle, forward)
}

// IndexReverse returns the last occurrence of needle inside w.
func (s *Searcher) IndexReverse(w Window, needle string) (Range, error) {
	return s.locate(w, needle, reverse)
}

func (s *Searcher) locate(w Window, needle string, dir direction) (Range, error) {
	if err := s.checkWindow(w); err != nil {
		return Range{}, err
	}
	if err := checkNeedle(needle); err != nil {
		return Range{}, err
	}
	m, ok := s.find(w, needle, dir)
	if !ok {
		return Range{}, ErrNotFound
	}
	return m, nil
}

// FindAll returns every non-overlapping occurrence of needle inside w, left
// to right. Each search resumes at the end of the previous match, so the
// ranges are exactly the ones IndexNth counts. No occurrence is not an error.
func (s *Searcher) FindAll(w Window, needle string) ([]Range, error) {
	if err := s.checkWindow(w); err != nil {
		return nil, err
	}
	if err := checkNeedle(needle); err != nil {
		return nil, err
	}

	var out []Range
	rest := w
	for {
		m, ok := s.find(rest, needle, forward)
		if !ok {
			return out, nil
		}
		out = append(out, m)
		rest = rest.From(m.End)
	}
}

// Count returns the number of non-overlapping occurrences of needle inside w.
func (s *Searcher) Count(w Window, needle string) (int, error) {
	if err := s.checkWindow(w); err != nil {
		return 0, err
	}
	if err := checkNeedle(needle); err != nil {
		return 0, err
	}
	return strings.Count(w.Slice(s.text), needle), nil
}

// Contains reports whether needle occurs inside w.
func (s *Searcher) Contains(w Window, needle string) (bool, error) {
	if err := s.checkWindow(w); err != nil {
		return false, err
	}
	if err := checkNeedle(needle); err != nil {
		return false, err
	}
	return strings.Contains(w.Slice(s.text), needle), nil
}

// find scans a validated window. Offsets from the scan are relative to the
// window and are shifted back by w.Start.
func (s *Searcher) find(w Window, needle string, dir direction) (Range, bool) {
	sub := w.Slice(s.text)
	var i int
	if dir == reverse {
		i = strings.LastIndex(sub, needle)
	} else {
		i = strings.Index(sub, needle)
	}
	if i < 0 {
		return Range{}, false
	}
	start := w.Start + Offset(i)
	return Range{Start: start, End: start + Offset(len(needle))}, true
}
