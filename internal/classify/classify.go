package classify

import (
	"regexp"
	"strings"
)

// Label identifies what a single transcript line is.
type Label int

const (
	// Plain is any line that carries no structural meaning on its own.
	Plain Label = iota
	// UserOpener starts a new user turn ("<user>: ...").
	UserOpener
	// AgentOpener starts a new agent turn ("<agent>: ...").
	AgentOpener
	// ActionOpener is a machine-generated tool invocation line.
	ActionOpener
	// TerminalCommand is a "Ran terminal command: ..." line. It is
	// recognized so the formatter can inline it, but it is agent prose,
	// not a tool action.
	TerminalCommand
	// Noise lines are export artifacts that are dropped entirely.
	Noise
)

const terminalPrefix = "Ran terminal command: "

// actionPattern pairs a category name with its opener pattern.
type actionPattern struct {
	name string
	re   *regexp.Regexp
}

// Tool invocation lines as the chat exporter writes them. The list is
// closed: anything not matching here is ordinary prose.
var defaultActionPatterns = []actionPattern{
	{"file-read", regexp.MustCompile(`^Read \[[^\]]*\]\([^)]*\)`)},
	{"file-create", regexp.MustCompile(`^Created \[[^\]]*\]\([^)]*\)`)},
	{"string-replace", regexp.MustCompile(`^Using "Replace String in File"`)},
	{"text-search", regexp.MustCompile(`^Searched text for `)},
	{"todo-update", regexp.MustCompile(`^Updated todo list`)},
	{"step-completed", regexp.MustCompile(`^Completed \(\d+/\d+\)`)},
	{"changes-made", regexp.MustCompile(`^Made changes\.$`)},
	{"history-summarized", regexp.MustCompile(`^Summarized conversation history$`)},
	{"todos-created", regexp.MustCompile(`^Created \d+ todos$`)},
}

// Export artifacts that never contribute content.
var noiseLines = []string{
	"Continue to iterate?",
	"[object Object]",
}

// User payloads that are auto-generated continuation confirmations, not
// real prompts.
var continuationPayloads = []string{
	`@agent Continue: "Continue to iterate?"`,
	`Continue: "Continue to iterate?"`,
}

// Rules classifies transcript lines for one document. The speaker
// tokens are fixed at construction; a Rules value is immutable and safe
// to share.
type Rules struct {
	userPrefix  string
	agentPrefix string
	actions     []actionPattern
}

// NewRules builds the classification rules for a document with the
// given user identifier and agent speaker token.
func NewRules(user, agent string) Rules {
	return Rules{
		userPrefix:  user + ": ",
		agentPrefix: agent + ": ",
		actions:     defaultActionPatterns,
	}
}

// Classify labels one line and returns the captured payload: the text
// after the speaker prefix for openers, the command for terminal lines,
// and the line itself otherwise.
func (r Rules) Classify(line string) (Label, string) {
	for _, n := range noiseLines {
		if line == n {
			return Noise, ""
		}
	}

	if payload, ok := strings.CutPrefix(line, r.userPrefix); ok {
		for _, c := range continuationPayloads {
			if payload == c {
				return Noise, ""
			}
		}
		return UserOpener, payload
	}

	if payload, ok := strings.CutPrefix(line, r.agentPrefix); ok {
		return AgentOpener, payload
	}

	if r.IsAction(line) {
		return ActionOpener, line
	}

	if cmd, ok := strings.CutPrefix(line, terminalPrefix); ok {
		return TerminalCommand, cmd
	}

	return Plain, line
}

// IsAction reports whether line matches any tool-action opener.
func (r Rules) IsAction(line string) bool {
	return r.ActionName(line) != ""
}

// ActionName returns the category of a tool-action line, or "" when the
// line is not an action.
func (r Rules) ActionName(line string) string {
	for _, p := range r.actions {
		if p.re.MatchString(line) {
			return p.name
		}
	}
	return ""
}
