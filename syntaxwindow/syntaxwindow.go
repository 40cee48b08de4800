// Package syntaxwindow derives strsearch windows from the syntax tree of Go
// source, so literal searches can be confined to a function, a block, a
// string literal or any other node kind of the tree-sitter Go grammar.
//
// Parsing needs cgo. Without it every entry point returns ErrUnsupported.
package syntaxwindow

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/kpumuk/strsearch"
)

var (
	// ErrUnsupported is returned when the package is built without cgo.
	ErrUnsupported = errors.New("syntax windows require a cgo build")
	// ErrSyntax reports that the parser produced no tree at all.
	ErrSyntax = errors.New("parser returned no syntax tree")
	// ErrNoKinds reports a call without node kinds to select.
	ErrNoKinds = fmt.Errorf("%w: no node kinds", strsearch.ErrInvalidInput)
	// ErrInvalidOffset reports an offset outside the source.
	ErrInvalidOffset = fmt.Errorf("%w: offset out of range", strsearch.ErrInvalidInput)
)

// node is a flattened syntax node in pre-order.
type node struct {
	kind string
	span strsearch.Window
}

// Windows parses src as Go and returns the windows of every node whose kind
// is one of kinds, in pre-order: a node precedes the nodes nested in it, and
// siblings appear in source order. A tree with syntax errors still yields
// the windows of the nodes it recovered.
func Windows(ctx context.Context, src []byte, kinds ...string) ([]strsearch.Window, error) {
	if len(kinds) == 0 {
		return nil, ErrNoKinds
	}
	nodes, err := parseNodes(ctx, src)
	if err != nil {
		return nil, err
	}
	return matching(nodes, kinds), nil
}

// Enclosing returns the smallest window of a node of one of kinds that
// contains off. Nothing enclosing off is strsearch.ErrNotFound.
func Enclosing(ctx context.Context, src []byte, off strsearch.Offset, kinds ...string) (strsearch.Window, error) {
	if len(kinds) == 0 {
		return strsearch.Window{}, ErrNoKinds
	}
	if off < 0 || int(off) > len(src) {
		return strsearch.Window{}, fmt.Errorf("%w: %d not in [0,%d]", ErrInvalidOffset, off, len(src))
	}
	nodes, err := parseNodes(ctx, src)
	if err != nil {
		return strsearch.Window{}, err
	}
	w, ok := smallest(nodes, off, kinds)
	if !ok {
		return strsearch.Window{}, strsearch.ErrNotFound
	}
	return w, nil
}

func matching(nodes []node, kinds []string) []strsearch.Window {
	var out []strsearch.Window
	for _, n := range nodes {
		if slices.Contains(kinds, n.kind) {
			out = append(out, n.span)
		}
	}
	return out
}

// smallest picks the shortest matching span containing off. Equal lengths
// resolve to the later node in pre-order, which is the more deeply nested.
func smallest(nodes []node, off strsearch.Offset, kinds []string) (strsearch.Window, bool) {
	var (
		best  strsearch.Window
		found bool
	)
	for _, n := range nodes {
		if !slices.Contains(kinds, n.kind) || !n.span.Contains(off) {
			continue
		}
		if !found || n.span.Len() <= best.Len() {
			best = n.span
			found = true
		}
	}
	return best, found
}
