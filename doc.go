// Package strsearch locates literal substrings inside a byte window of a
// text buffer and derives sub-ranges bounded by start and end marker groups.
//
// Every operation takes a Window, a half-open byte range [Start, End) over
// the buffer, and reports results as absolute Range values measured from the
// start of the buffer. A miss is reported as ErrNotFound; malformed input
// (bad windows, empty needles or groups, non-positive counts, unset boundary
// policies) is reported as an error wrapping ErrInvalidInput. Operations never
// panic and never modify the buffer.
//
// Sequence searches chain needles in order: each needle is searched only in
// the part of the window left over by the previous match. Bounded extraction
// runs one sequence for the start markers and one for the end markers and
// returns the text between them, keeping or stripping each marker group per
// its Boundary.
package strsearch
