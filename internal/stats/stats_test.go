package stats

import (
	"strings"
	"testing"

	"github.com/suykerbuyk/chatmark/internal/classify"
	"github.com/suykerbuyk/chatmark/internal/segment"
)

func collectFixture(t *testing.T) Summary {
	t.Helper()
	rules := classify.NewRules("alice", "GitHub Copilot")
	text := strings.Join([]string{
		"alice: do the thing",
		"GitHub Copilot: on it",
		"Read [](file:///p/a.js)",
		"Created [b](file:///p/b.go)",
		"Made changes.",
		"All done.",
		"alice: thanks",
	}, "\n")
	turns := segment.Merge(segment.Split(strings.Split(text, "\n"), rules))
	return Collect(turns, rules)
}

func TestCollect(t *testing.T) {
	s := collectFixture(t)

	if s.Turns != 2 {
		t.Errorf("expected 2 turns, got %d", s.Turns)
	}
	if s.ActionRuns != 1 {
		t.Errorf("expected 1 action run, got %d", s.ActionRuns)
	}
	if s.ActionLines != 3 {
		t.Errorf("expected 3 action lines, got %d", s.ActionLines)
	}
	if s.ProseChunks != 2 {
		t.Errorf("expected 2 prose chunks, got %d", s.ProseChunks)
	}
	if s.Categories["file-read"] != 1 || s.Categories["file-create"] != 1 || s.Categories["changes-made"] != 1 {
		t.Errorf("unexpected categories: %v", s.Categories)
	}
}

func TestFormat(t *testing.T) {
	out := Format(collectFixture(t), "session.md")

	for _, want := range []string{"cm stats session.md", "turns", "action runs", "file-read"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormat_Empty(t *testing.T) {
	out := Format(Summary{}, "empty.md")
	if !strings.Contains(out, "No turns found") {
		t.Errorf("expected empty notice, got:\n%s", out)
	}
}
