package mdfmt

import (
	"strings"
	"testing"
)

func TestNormalizeTrailingSpace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"hard break at paragraph end stripped", "foo  \n\nbar", "foo\n\nbar"},
		{"hard break mid paragraph kept", "foo  \nbar", "foo  \nbar"},
		{"single trailing space always stripped", "foo \nbar", "foo\nbar"},
		{"three spaces before blank stripped", "foo   \n\nbar", "foo\n\nbar"},
		{"document end counts as blank", "foo  ", "foo"},
		{"fenced content untouched", "```\ncode  \n\nmore\n```", "```\ncode  \n\nmore\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTrailingSpace(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCompactBlankLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"three blanks to two", "a\n\n\n\nb", "a\n\n\nb"},
		{"many blanks to two", "a\n\n\n\n\n\nb", "a\n\n\nb"},
		{"two blanks kept", "a\n\n\nb", "a\n\n\nb"},
		{"one blank kept", "a\n\nb", "a\n\nb"},
		{"fenced blanks untouched", "```\na\n\n\n\nb\n```", "```\na\n\n\n\nb\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompactBlankLines(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestEnsureStructuralSpacing(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"blank before heading", "text\n# h", "text\n\n# h"},
		{"blank after heading", "# h\nbody", "# h\n\nbody"},
		{"already spaced untouched", "text\n\n# h\n\nbody", "text\n\n# h\n\nbody"},
		{"blank before new list", "para\n- a\n- b", "para\n\n- a\n- b"},
		{"ordered list too", "para\n1. a\n2. b", "para\n\n1. a\n2. b"},
		{"blank before fence open", "para\n```go\ncode\n```", "para\n\n```go\ncode\n```"},
		{"no blank after comment", "<!-- m -->\n# h\n\nx", "<!-- m -->\n# h\n\nx"},
		{"no blank after frontmatter delimiter", "---\n# h\n\nx", "---\n# h\n\nx"},
		{"fenced content untouched", "```\ntext\n# h\n```", "```\ntext\n# h\n```"},
		// A blank before a close marker would land inside the fence, so
		// only open markers get a separator.
		{"no blank before fence close", "para\n\n```go\ncode\n```\nafter", "para\n\n```go\ncode\n```\nafter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnsureStructuralSpacing(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFenceScanner(t *testing.T) {
	var f FenceScanner
	lines := []string{"a", "```", "b", "```", "c"}
	want := []bool{false, true, true, true, false}
	for i, line := range lines {
		if got := f.Step(line); got != want[i] {
			t.Errorf("line %d %q: expected %v, got %v", i, line, want[i], got)
		}
	}
}

func TestFenceSafety_NoTransformTouchesFencedContent(t *testing.T) {
	fenced := "```\n# heading  \n\n\n\nRan terminal command: x\n[a](file:///p/a)\n```"

	transforms := map[string]func(string) string{
		"ShiftHeadings":           ShiftHeadings,
		"InlineTerminalCommands":  InlineTerminalCommands,
		"InsertHardBreaks":        InsertHardBreaks,
		"NormalizeTrailingSpace":  NormalizeTrailingSpace,
		"CompactBlankLines":       CompactBlankLines,
		"EnsureStructuralSpacing": EnsureStructuralSpacing,
	}

	for name, fn := range transforms {
		if got := fn(fenced); got != fenced {
			t.Errorf("%s altered fenced content:\n%s", name, got)
		}
	}

	// Context-reference formatting is deliberately not fence-guarded.
	if got := FormatContextRefs(fenced); !strings.Contains(got, "📄 `a`") {
		t.Errorf("FormatContextRefs should run inside fences, got:\n%s", got)
	}
}
