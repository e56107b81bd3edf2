package render

import (
	"fmt"
	"strings"

	"github.com/suykerbuyk/chatmark/internal/project"
	"github.com/suykerbuyk/chatmark/internal/segment"
)

const (
	// ProcessedMarker is the sentinel that gates idempotence: a document
	// carrying it is returned unchanged unless processing is forced.
	ProcessedMarker = "<!-- cm:processed -->"

	userTurnMarker  = "<!-- cm:turn:user -->"
	agentTurnMarker = "<!-- cm:turn:agent -->"
)

// Options carries the fixed display context for one document.
type Options struct {
	User  string // user speaker name shown in turn headings
	Agent string // agent speaker name shown in turn headings
	Root  string // detected project root, "" when unknown
}

// Document renders merged turns into the annotated body of the output
// document. Segment bodies are expected to be transformed already; the
// document-level pipeline runs after this.
func Document(turns []segment.Turn, opts Options) string {
	var b strings.Builder

	for _, t := range turns {
		if t.Prompt == nil {
			writeOrphan(&b, t)
			continue
		}
		writeTurn(&b, t, opts)
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// writeTurn renders one user prompt and its fused response.
func writeTurn(b *strings.Builder, t segment.Turn, opts Options) {
	b.WriteString(userTurnMarker + "\n")
	fmt.Fprintf(b, "## 🧑 %s\n\n", opts.User)
	b.WriteString(t.Prompt.Text())
	b.WriteString("\n\n")

	if len(t.Body) == 0 {
		return
	}

	b.WriteString(agentTurnMarker + "\n")
	fmt.Fprintf(b, "## 🤖 %s\n\n", opts.Agent)
	for _, p := range t.Body {
		switch {
		case p.Text != nil:
			b.WriteString(*p.Text)
			b.WriteString("\n\n")
		case p.Action != nil:
			writeActions(b, t.Actions[*p.Action], opts.Root)
		}
	}
}

// writeActions renders one action run as a collapsible block, each line
// passed through path simplification.
func writeActions(b *strings.Builder, a segment.Segment, root string) {
	b.WriteString("<details>\n")
	fmt.Fprintf(b, "<summary>⚙️ %s</summary>\n\n", countLabel(len(a.Lines)))
	for _, line := range a.Lines {
		fmt.Fprintf(b, "- %s\n", project.Simplify(line, root))
	}
	b.WriteString("\n</details>\n\n")
}

// writeOrphan emits pre-prompt content unchanged.
func writeOrphan(b *strings.Builder, t segment.Turn) {
	for _, s := range t.Raw {
		b.WriteString(s.Text())
		b.WriteString("\n\n")
	}
}

func countLabel(n int) string {
	if n == 1 {
		return "1 action"
	}
	return fmt.Sprintf("%d actions", n)
}
