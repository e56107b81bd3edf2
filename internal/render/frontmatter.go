package render

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// RootUnavailable is written to the frontmatter when no project root
// could be detected.
const RootUnavailable = "not available"

// frontmatter is the fixed key set emitted at the top of every
// processed document, in field order.
type frontmatter struct {
	Type        string `yaml:"type"`
	ProjectRoot string `yaml:"project_root"`
	Source      string `yaml:"source"`
	Processed   string `yaml:"processed"`
}

// FrontmatterBlock renders the document frontmatter followed by the
// processed marker. The timestamp is the only non-deterministic field
// in the whole output.
func FrontmatterBlock(root, source string, now time.Time) string {
	if root == "" {
		root = RootUnavailable
	}

	fm := frontmatter{
		Type:        "chat-session",
		ProjectRoot: root,
		Source:      source,
		Processed:   now.UTC().Format(time.RFC3339),
	}

	body, err := yaml.Marshal(fm)
	if err != nil {
		// Marshaling a flat string struct cannot realistically fail,
		// but a broken frontmatter must not abort the run.
		log.Printf("warning: frontmatter marshal: %v", err)
		body = []byte(fmt.Sprintf("type: chat-session\nsource: %s\n", source))
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(body)
	b.WriteString("---\n")
	b.WriteString(ProcessedMarker + "\n")
	return b.String()
}
