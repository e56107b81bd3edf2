package mdfmt

import (
	"regexp"
	"strings"
)

// Transforms applied to individual segment bodies before rendering.
// Each one is pure and total: any line sequence in, same-or-rewritten
// line sequence out.

var headingPattern = regexp.MustCompile(`^(#{1,6}) `)

// ShiftHeadings demotes every markdown heading by one level, capped at
// level 6, so agent-authored headings sit below the rendered turn
// headings. Fenced content is left alone.
func ShiftHeadings(text string) string {
	lines := strings.Split(text, "\n")
	var fence FenceScanner
	for i, line := range lines {
		if fence.Step(line) {
			continue
		}
		m := headingPattern.FindStringSubmatch(line)
		if m == nil || len(m[1]) >= 6 {
			continue
		}
		lines[i] = "#" + line
	}
	return strings.Join(lines, "\n")
}

const (
	terminalLinePrefix = "Ran terminal command: "
	terminalLabel      = "**🖥️ Terminal**"
)

// InlineTerminalCommands replaces "Ran terminal command: <cmd>" lines
// with a bold label followed by a fenced shell block holding the
// command.
func InlineTerminalCommands(text string) string {
	lines := strings.Split(text, "\n")
	var fence FenceScanner
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if fence.Step(line) {
			out = append(out, line)
			continue
		}
		cmd, ok := strings.CutPrefix(line, terminalLinePrefix)
		if !ok {
			out = append(out, line)
			continue
		}
		out = append(out, terminalLabel, "```sh", cmd, "```")
	}
	return strings.Join(out, "\n")
}

// InsertHardBreaks appends two trailing spaces to a plain prose line
// whose successor is also plain prose, producing a markdown hard line
// break between them. Structural lines (headings, list items, table
// rows, comments, indented blocks, fence markers) and fenced content
// are never touched.
func InsertHardBreaks(text string) string {
	lines := strings.Split(text, "\n")
	var fence FenceScanner
	for i, line := range lines {
		if fence.Step(line) {
			continue
		}
		if i+1 >= len(lines) {
			break
		}
		next := lines[i+1]
		if !isProse(line) || !isProse(next) {
			continue
		}
		lines[i] = line + "  "
	}
	return strings.Join(lines, "\n")
}

// isProse reports whether line is a non-blank, non-structural line that
// may carry a hard break.
func isProse(line string) bool {
	return strings.TrimSpace(line) != "" && !isStructural(line) && !IsFenceMarker(line)
}

var orderedItemPattern = regexp.MustCompile(`^\s*\d+[.)] `)

// isStructural reports whether a line is a markdown structural element
// rather than running prose.
func isStructural(line string) bool {
	if headingPattern.MatchString(line) {
		return true
	}
	if isListItem(line) || orderedItemPattern.MatchString(line) {
		return true
	}
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "|") || strings.HasPrefix(trimmed, "<!--") {
		return true
	}
	// Indented code block.
	if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
		return true
	}
	return false
}

func isListItem(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	for _, marker := range []string{"- ", "* ", "+ "} {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}
