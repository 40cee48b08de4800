//go:build cgo

package syntaxwindow

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kpumuk/strsearch"
)

const goSource = `package main

func a() {
	println("x")
}

func b() {
	if true {
		println("x")
	}
}
`

func TestWindowsFunctionDeclarations(t *testing.T) {
	t.Parallel()

	windows, err := Windows(context.Background(), []byte(goSource), "function_declaration")
	if err != nil {
		t.Fatalf("Windows() error = %v", err)
	}
	if len(windows) != 2 {
		t.Fatalf("Windows() returned %d windows, want 2", len(windows))
	}

	for i, prefix := range []string{"func a()", "func b()"} {
		got := windows[i].Slice(goSource)
		if !strings.HasPrefix(got, prefix) || !strings.HasSuffix(got, "}") {
			t.Fatalf("window %d = %q, want %s...}", i, got, prefix)
		}
	}

	// Searching inside the second function yields buffer offsets.
	s := strsearch.New(goSource)
	r, err := s.Index(windows[1], `"x"`)
	if err != nil {
		t.Fatalf("Index() error = %v", err)
	}
	if want := strings.LastIndex(goSource, `"x"`); int(r.Start) != want {
		t.Fatalf("Index() = %s, want start %d", r, want)
	}

	out, err := s.Extract(windows[0], []string{"println("}, strsearch.Exclude, []string{")"}, strsearch.Exclude)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if out.Text != `"x"` {
		t.Fatalf("Extract() = %q, want %q", out.Text, `"x"`)
	}
}

func TestWindowsStringLiterals(t *testing.T) {
	t.Parallel()

	windows, err := Windows(context.Background(), []byte(goSource), "interpreted_string_literal")
	if err != nil {
		t.Fatalf("Windows() error = %v", err)
	}
	if len(windows) != 2 {
		t.Fatalf("Windows() returned %d windows, want 2", len(windows))
	}
	for _, w := range windows {
		if got := w.Slice(goSource); got != `"x"` {
			t.Fatalf("literal window = %q, want %q", got, `"x"`)
		}
	}
	if windows[0].Start >= windows[1].Start {
		t.Fatalf("windows out of source order: %v", windows)
	}
}

func TestEnclosingInnermostBlock(t *testing.T) {
	t.Parallel()

	src := []byte(goSource)
	off := strsearch.Offset(strings.LastIndex(goSource, `"x"`))

	block, err := Enclosing(context.Background(), src, off, "block")
	if err != nil {
		t.Fatalf("Enclosing(block) error = %v", err)
	}
	got := block.Slice(goSource)
	if !strings.HasPrefix(got, "{") || strings.Contains(got, "if") {
		t.Fatalf("Enclosing(block) = %q, want the if body", got)
	}

	fn, err := Enclosing(context.Background(), src, off, "function_declaration", "method_declaration")
	if err != nil {
		t.Fatalf("Enclosing(function) error = %v", err)
	}
	if !strings.HasPrefix(fn.Slice(goSource), "func b()") {
		t.Fatalf("Enclosing(function) = %q", fn.Slice(goSource))
	}

	if _, err := Enclosing(context.Background(), src, off, "comment"); !errors.Is(err, strsearch.ErrNotFound) {
		t.Fatalf("Enclosing(comment) error = %v, want ErrNotFound", err)
	}
}

func TestWindowsRecoversFromSyntaxErrors(t *testing.T) {
	t.Parallel()

	src := []byte("package main\n\nfunc ok() {}\n\nfunc broken( {\n")
	windows, err := Windows(context.Background(), src, "source_file", "ERROR")
	if err != nil {
		t.Fatalf("Windows() error = %v", err)
	}
	if len(windows) == 0 || windows[0].Start != 0 {
		t.Fatalf("Windows(source_file, ERROR) = %v, want the root window first", windows)
	}
}

func TestWindowsHonorsCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Windows(ctx, []byte(goSource), "block"); !errors.Is(err, context.Canceled) {
		t.Fatalf("Windows() error = %v, want context.Canceled", err)
	}
}
