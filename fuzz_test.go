package strsearch

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzIndexWithinWindow(f *testing.F) {
	for _, seed := range []struct {
		src, needle string
		a, b        uint
	}{
		{src: doubled, needle: "ins", a: 0, b: 72},
		{src: doubled, needle: "b3m4x", a: 1, b: 40},
		{src: "aé😀z", needle: "😀", a: 1, b: 7},
		{src: "aé😀z", needle: "z", a: 2, b: 8}, // splits é
		{src: "aaaa", needle: "aa", a: 1, b: 4},
		{src: "aé", needle: "\xa9", a: 0, b: 3},
	} {
		f.Add(seed.src, seed.needle, seed.a, seed.b)
	}

	f.Fuzz(func(t *testing.T, src, needle string, a, b uint) {
		if len(src) > 64*1024 {
			t.Skip()
		}
		w := fuzzWindow(src, a, b)
		s := New(src)

		fwd, err := s.Index(w, needle)
		switch {
		case needle == "":
			if !errors.Is(err, ErrEmptyNeedle) && !errors.Is(err, ErrInvalidWindow) {
				t.Fatalf("Index(%s, empty) error = %v", w, err)
			}
			return
		case w.ValidateIn(src) != nil:
			if !errors.Is(err, ErrInvalidWindow) {
				t.Fatalf("Index(%s) error = %v, want invalid window", w, err)
			}
			return
		case !utf8.ValidString(needle):
			if !errors.Is(err, ErrInvalidNeedle) {
				t.Fatalf("Index(%s, %q) error = %v, want invalid needle", w, needle, err)
			}
			return
		}

		want := strings.Index(w.Slice(src), needle)
		if want < 0 {
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("Index(%s, %q) error = %v, want ErrNotFound", w, needle, err)
			}
			return
		}
		if err != nil || fwd.Start != w.Start+Offset(want) {
			t.Fatalf("Index(%s, %q) = %s, %v; want start %d", w, needle, fwd, err, int(w.Start)+want)
		}
		if !w.ContainsSpan(fwd) || fwd.Slice(src) != needle {
			t.Fatalf("Index(%s, %q) = %s escapes window or mismatches", w, needle, fwd)
		}

		rev, err := s.IndexReverse(w, needle)
		if err != nil {
			t.Fatalf("IndexReverse(%s, %q) error = %v", w, needle, err)
		}
		if utf8.ValidString(src) && fwd.ValidateIn(src) != nil {
			t.Fatalf("Index(%s, %q) = %s splits a rune", w, needle, fwd)
		}
		if rev.Start < fwd.Start || !w.ContainsSpan(rev) || rev.Slice(src) != needle {
			t.Fatalf("IndexReverse(%s, %q) = %s, forward %s", w, needle, rev, fwd)
		}

		all, err := s.FindAll(w, needle)
		if err != nil || len(all) == 0 || all[0] != fwd {
			t.Fatalf("FindAll(%s, %q) = %v, %v; first want %s", w, needle, all, err, fwd)
		}
		if n, err := s.Count(w, needle); err != nil || n != len(all) {
			t.Fatalf("Count(%s, %q) = %d, %v; FindAll found %d", w, needle, n, err, len(all))
		}
	})
}

func fuzzWindow(src string, a, b uint) Window {
	n := uint(len(src)) + 1
	start, end := int(a%n), int(b%n)
	if end < start {
		start, end = end, start
	}
	return NewWindow(start, end)
}
