package mdfmt

import "strings"

// IsFenceMarker reports whether line toggles fenced-code-block state.
func IsFenceMarker(line string) bool {
	return strings.HasPrefix(line, "```")
}

// FenceScanner tracks fenced code-block state across one pass over a
// line sequence. Each consumer takes its own scanner; state is never
// shared between transforms.
type FenceScanner struct {
	inside bool
}

// Inside reports whether the scanner is currently inside an open fence.
func (f *FenceScanner) Inside() bool {
	return f.inside
}

// Step consumes one line, toggling on fence markers, and reports
// whether the line is exempt from prose handling: either a marker
// itself or a line inside an open fence.
func (f *FenceScanner) Step(line string) bool {
	if IsFenceMarker(line) {
		f.inside = !f.inside
		return true
	}
	return f.inside
}
