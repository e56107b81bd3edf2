package segment

import (
	"strings"

	"github.com/suykerbuyk/chatmark/internal/classify"
	"github.com/suykerbuyk/chatmark/internal/mdfmt"
)

// Split walks the transcript lines in a single forward pass and returns
// the ordered list of typed segments.
func Split(lines []string, rules classify.Rules) []Segment {
	s := splitter{rules: rules}
	for _, line := range lines {
		s.consume(line)
	}
	s.finish()
	return s.out
}

// splitter is the segmentation state machine: a kind tag, one open
// segment builder, and a separate accumulator for in-progress tool
// actions. Fence state is tracked so fenced content is appended
// verbatim without classification.
type splitter struct {
	rules    classify.Rules
	out      []Segment
	cur      Segment
	actions  []string
	inAction bool
	fence    mdfmt.FenceScanner
}

func (s *splitter) consume(line string) {
	// Fence markers and fenced content bypass classification entirely
	// and extend whatever is open.
	if s.fence.Step(line) {
		if s.inAction {
			s.actions = append(s.actions, line)
			return
		}
		s.append(line)
		return
	}

	label, payload := s.rules.Classify(line)

	switch label {
	case classify.Noise:
		return

	case classify.UserOpener:
		// A prompt boundary abandons any unfinished action run.
		if s.inAction {
			s.actions = nil
			s.inAction = false
		}
		s.flush()
		s.cur = Segment{Kind: UserPrompt, Lines: []string{payload}}
		return

	case classify.AgentOpener:
		s.closeActions()
		s.flush()
		s.cur = Segment{Kind: AgentResponse, Lines: []string{payload}}
		return

	case classify.ActionOpener:
		if s.inAction {
			s.actions = append(s.actions, line)
			return
		}
		s.flush()
		s.inAction = true
		s.actions = []string{line}
		return
	}

	// Plain or terminal-command line.
	if s.inAction {
		// Blank separators are part of an action run; anything else
		// ends it and resumes agent prose.
		if strings.TrimSpace(line) == "" {
			return
		}
		s.closeActions()
		s.cur = Segment{Kind: AgentResponse, Lines: []string{line}}
		return
	}

	s.append(line)
}

// append extends the open segment, opening an Unknown one when nothing
// is open yet. Blank lines before any boundary are discarded so the
// preamble never starts with padding.
func (s *splitter) append(line string) {
	if len(s.cur.Lines) == 0 {
		if strings.TrimSpace(line) == "" {
			return
		}
		s.cur = Segment{Kind: Unknown, Lines: []string{line}}
		return
	}
	s.cur.Lines = append(s.cur.Lines, line)
}

// flush emits the open segment when it has content.
func (s *splitter) flush() {
	if len(s.cur.Lines) > 0 {
		s.out = append(s.out, s.cur)
	}
	s.cur = Segment{}
}

// closeActions emits the accumulated action run, if any.
func (s *splitter) closeActions() {
	if !s.inAction {
		return
	}
	if len(s.actions) > 0 {
		s.out = append(s.out, Segment{Kind: ToolAction, Lines: s.actions})
	}
	s.actions = nil
	s.inAction = false
}

// finish flushes whatever remains at end of input, never emitting
// trailing empties.
func (s *splitter) finish() {
	s.closeActions()
	s.flush()
}
