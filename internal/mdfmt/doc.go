package mdfmt

import "strings"

// Transforms applied once to the fully assembled document, in order:
// trailing-space normalization, blank-line compaction, structural
// spacing. All three leave fenced content untouched.

// NormalizeTrailingSpace strips a single stray trailing space anywhere,
// and strips runs of two or more trailing spaces only when the next
// line is blank or the document ends, where a hard break is
// meaningless. A hard break followed by more prose is kept.
func NormalizeTrailingSpace(text string) string {
	lines := strings.Split(text, "\n")
	var fence FenceScanner
	for i, line := range lines {
		if fence.Step(line) {
			continue
		}
		trimmed := strings.TrimRight(line, " ")
		n := len(line) - len(trimmed)
		if n == 0 {
			continue
		}
		if n == 1 {
			lines[i] = trimmed
			continue
		}
		if i+1 >= len(lines) || strings.TrimSpace(lines[i+1]) == "" {
			lines[i] = trimmed
		}
	}
	return strings.Join(lines, "\n")
}

// CompactBlankLines collapses any run of three or more consecutive
// blank lines outside fences to exactly two.
func CompactBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	var fence FenceScanner
	out := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		exempt := fence.Step(line)
		if !exempt && strings.TrimSpace(line) == "" {
			blanks++
			if blanks > 2 {
				continue
			}
		} else {
			blanks = 0
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// EnsureStructuralSpacing inserts a blank line before headings, the
// first item of a new list, and fence openings, and after any heading
// directly followed by content. Lines that already separate structure
// (blanks, frontmatter delimiters, HTML comments, fence markers) never
// get another blank stacked on them.
func EnsureStructuralSpacing(text string) string {
	lines := strings.Split(text, "\n")
	var fence FenceScanner
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		wasInside := fence.Inside()
		fence.Step(line)

		if wasInside {
			// Fenced content, including the closing marker.
			out = append(out, line)
			continue
		}

		opensFence := IsFenceMarker(line)
		heading := headingPattern.MatchString(line)
		newList := startsList(lines, i)

		if (heading || opensFence || newList) && needsBlankBefore(out) {
			out = append(out, "")
		}
		out = append(out, line)

		if heading && i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
			out = append(out, "")
		}
	}

	return strings.Join(out, "\n")
}

// startsList reports whether line i begins a new list: it is a list
// item and the previous line is not one.
func startsList(lines []string, i int) bool {
	if !isListItem(lines[i]) && !orderedItemPattern.MatchString(lines[i]) {
		return false
	}
	if i == 0 {
		return false
	}
	prev := lines[i-1]
	return !isListItem(prev) && !orderedItemPattern.MatchString(prev)
}

// needsBlankBefore reports whether a blank separator must be emitted
// given what has been written so far.
func needsBlankBefore(out []string) bool {
	if len(out) == 0 {
		return false
	}
	prev := out[len(out)-1]
	switch {
	case strings.TrimSpace(prev) == "":
		return false
	case prev == "---":
		return false
	case strings.HasPrefix(strings.TrimSpace(prev), "<!--"):
		return false
	case IsFenceMarker(prev):
		return false
	}
	return true
}
