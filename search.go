package strsearch

// The functions below run a single search with default options.

// Index returns the first occurrence of needle in w over s.
func Index(s string, w Window, needle string) (Range, error) {
	return New(s).Index(w, needle)
}

// IndexReverse returns the last occurrence of needle in w over s.
func IndexReverse(s string, w Window, needle string) (Range, error) {
	return New(s).IndexReverse(w, needle)
}

// IndexSequence chains needles left to right in w over s.
func IndexSequence(s string, w Window, needles []string) (Range, error) {
	return New(s).IndexSequence(w, needles)
}

// IndexSequenceReverse chains needles right to left in w over s.
func IndexSequenceReverse(s string, w Window, needles []string) (Range, error) {
	return New(s).IndexSequenceReverse(w, needles)
}

// IndexNth returns the n-th occurrence (1-based) of needle in w over s.
func IndexNth(s string, w Window, needle string, n int) (Range, error) {
	return New(s).IndexNth(w, needle, n)
}

// IndexNthReverse returns the n-th occurrence (1-based) of needle in w over
// s, counting from the end of w.
func IndexNthReverse(s string, w Window, needle string, n int) (Range, error) {
	return New(s).IndexNthReverse(w, needle, n)
}

// FindAll returns every non-overlapping occurrence of needle in w over s.
func FindAll(s string, w Window, needle string) ([]Range, error) {
	return New(s).FindAll(w, needle)
}

// Extract runs a bounded extraction in w over s. See Searcher.Extract.
func Extract(s string, w Window, start []string, startBoundary Boundary, end []string, endBoundary Boundary) (Output, error) {
	return New(s).Extract(w, start, startBoundary, end, endBoundary)
}

// ExtractReverse runs a reverse bounded extraction in w over s. See
// Searcher.ExtractReverse.
func ExtractReverse(s string, w Window, start []string, startBoundary Boundary, end []string, endBoundary Boundary) (Output, error) {
	return New(s).ExtractReverse(w, start, startBoundary, end, endBoundary)
}
