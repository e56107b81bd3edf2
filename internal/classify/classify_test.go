package classify

import "testing"

func TestClassify_Openers(t *testing.T) {
	r := NewRules("alice", "GitHub Copilot")

	tests := []struct {
		name    string
		line    string
		label   Label
		payload string
	}{
		{"user opener", "alice: hi there", UserOpener, "hi there"},
		{"user opener empty payload", "alice: ", UserOpener, ""},
		{"agent opener", "GitHub Copilot: hello", AgentOpener, "hello"},
		{"terminal command", "Ran terminal command: go test ./...", TerminalCommand, "go test ./..."},
		{"plain prose", "just some text", Plain, "just some text"},
		{"other speaker is plain", "bob: hi", Plain, "bob: hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, payload := r.Classify(tt.line)
			if label != tt.label {
				t.Errorf("label: expected %v, got %v", tt.label, label)
			}
			if payload != tt.payload {
				t.Errorf("payload: expected %q, got %q", tt.payload, payload)
			}
		})
	}
}

func TestClassify_Noise(t *testing.T) {
	r := NewRules("alice", "GitHub Copilot")

	lines := []string{
		"Continue to iterate?",
		"[object Object]",
		`alice: @agent Continue: "Continue to iterate?"`,
		`alice: Continue: "Continue to iterate?"`,
	}
	for _, line := range lines {
		label, _ := r.Classify(line)
		if label != Noise {
			t.Errorf("%q: expected Noise, got %v", line, label)
		}
	}
}

func TestActionName(t *testing.T) {
	r := NewRules("alice", "GitHub Copilot")

	tests := []struct {
		line string
		name string
	}{
		{"Read [a.js](file:///home/u/proj/a.js), lines 1 to 40", "file-read"},
		{"Read [](file:///home/u/proj/a.js)", "file-read"},
		{"Created [b.go](file:///home/u/proj/b.go)", "file-create"},
		{`Using "Replace String in File"`, "string-replace"},
		{"Searched text for `TODO`, 12 results", "text-search"},
		{"Updated todo list", "todo-update"},
		{"Completed (3/5) Fix the parser", "step-completed"},
		{"Made changes.", "changes-made"},
		{"Summarized conversation history", "history-summarized"},
		{"Created 3 todos", "todos-created"},
		{"Reading the docs now", ""},
		{"Created a new branch", ""},
		{"Made changes. And then some", ""},
	}

	for _, tt := range tests {
		if got := r.ActionName(tt.line); got != tt.name {
			t.Errorf("%q: expected %q, got %q", tt.line, tt.name, got)
		}
	}
}

func TestClassify_ActionPrecedesPlain(t *testing.T) {
	r := NewRules("alice", "GitHub Copilot")
	label, _ := r.Classify("Made changes.")
	if label != ActionOpener {
		t.Fatalf("expected ActionOpener, got %v", label)
	}
}
