package stats

import (
	"fmt"
	"sort"
	"strings"
)

// Format renders a Summary as aligned terminal output.
func Format(s Summary, source string) string {
	if s.Turns == 0 && s.OrphanLines == 0 {
		return fmt.Sprintf("cm stats %s\n\n  No turns found.\n", source)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "cm stats %s\n", source)

	b.WriteString("\nStructure\n")
	fmt.Fprintf(&b, "  %-20s %d\n", "turns", s.Turns)
	fmt.Fprintf(&b, "  %-20s %d\n", "prompt lines", s.PromptLines)
	fmt.Fprintf(&b, "  %-20s %d\n", "prose chunks", s.ProseChunks)
	fmt.Fprintf(&b, "  %-20s %d (%d lines)\n", "action runs", s.ActionRuns, s.ActionLines)
	if s.OrphanLines > 0 {
		fmt.Fprintf(&b, "  %-20s %d lines\n", "preamble", s.OrphanLines)
	}

	if len(s.Categories) > 0 {
		b.WriteString("\nActions\n")
		var names []string
		for name := range s.Categories {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "  %-20s %3d\n", name, s.Categories[name])
		}
	}

	return b.String()
}
