package stats

import (
	"github.com/suykerbuyk/chatmark/internal/classify"
	"github.com/suykerbuyk/chatmark/internal/segment"
)

// Summary aggregates structure counts for one document.
type Summary struct {
	Turns       int // user prompts
	PromptLines int
	ProseChunks int // prose pieces in fused responses
	ActionRuns  int
	ActionLines int
	OrphanLines int // content before the first prompt

	// Action lines by category, e.g. "file-read".
	Categories map[string]int
}

// Collect walks merged turns and tallies the document's structure.
func Collect(turns []segment.Turn, rules classify.Rules) Summary {
	s := Summary{Categories: make(map[string]int)}

	for _, t := range turns {
		if t.Prompt == nil {
			for _, r := range t.Raw {
				s.OrphanLines += len(r.Lines)
			}
			continue
		}

		s.Turns++
		s.PromptLines += len(t.Prompt.Lines)

		for _, p := range t.Body {
			if p.Text != nil {
				s.ProseChunks++
			}
		}
		for _, a := range t.Actions {
			s.ActionRuns++
			s.ActionLines += len(a.Lines)
			for _, line := range a.Lines {
				if name := rules.ActionName(line); name != "" {
					s.Categories[name]++
				}
			}
		}
	}

	return s
}
