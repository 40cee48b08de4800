//go:build !cgo

package syntaxwindow

import "context"

func parseNodes(context.Context, []byte) ([]node, error) {
	return nil, ErrUnsupported
}
