//go:build cgo

package syntaxwindow

import (
	"context"
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	sittergo "github.com/tree-sitter/tree-sitter-go/bindings/go"

	"github.com/kpumuk/strsearch"
)

func parseNodes(ctx context.Context, src []byte) ([]node, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(sitter.NewLanguage(sittergo.Language())); err != nil {
		return nil, fmt.Errorf("set Go grammar: %w", err)
	}

	tree := parser.ParseWithOptions(func(i int, _ sitter.Point) []byte {
		if i >= len(src) {
			return nil
		}
		return src[i:]
	}, nil, &sitter.ParseOptions{
		ProgressCallback: func(_ sitter.ParseState) bool {
			return ctx.Err() != nil
		},
	})
	if err := ctx.Err(); err != nil {
		if tree != nil {
			tree.Close()
		}
		return nil, err
	}
	if tree == nil {
		return nil, ErrSyntax
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, ErrSyntax
	}
	var nodes []node
	collect(root, &nodes)
	return nodes, nil
}

func collect(n *sitter.Node, out *[]node) {
	*out = append(*out, node{
		kind: n.Kind(),
		span: strsearch.NewWindow(int(n.StartByte()), int(n.EndByte())),
	})
	for i := uint(0); i < n.ChildCount(); i++ {
		if child := n.Child(i); child != nil {
			collect(child, out)
		}
	}
}
