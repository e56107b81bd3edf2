package document

import (
	"strings"

	"github.com/suykerbuyk/chatmark/internal/render"
)

// Processed reports whether text already carries the processed marker.
func Processed(text string) bool {
	return strings.Contains(text, render.ProcessedMarker)
}

// StripFrontmatter removes a leading "---"-delimited frontmatter block,
// the processed marker, and any padding after them, so a forced rerun
// hands the core the same shape of text a first run would see. Text
// without a leading delimiter is returned as is.
func StripFrontmatter(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return text
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end < 0 {
		return text
	}

	rest := lines[end+1:]
	for len(rest) > 0 {
		t := strings.TrimSpace(rest[0])
		if t == render.ProcessedMarker || t == "" {
			rest = rest[1:]
			continue
		}
		break
	}
	return strings.Join(rest, "\n")
}
