// Package document drives one transcript through the whole pipeline:
// idempotence gate, speaker resolution, segmentation, merging, text
// transforms, and rendering.
package document

import (
	"strings"
	"time"

	"github.com/suykerbuyk/chatmark/internal/classify"
	"github.com/suykerbuyk/chatmark/internal/mdfmt"
	"github.com/suykerbuyk/chatmark/internal/project"
	"github.com/suykerbuyk/chatmark/internal/render"
	"github.com/suykerbuyk/chatmark/internal/segment"
	"github.com/suykerbuyk/chatmark/internal/source"
)

// DefaultAgent is the agent speaker token the exporter writes.
const DefaultAgent = "GitHub Copilot"

// Options controls one processing run.
type Options struct {
	User   string           // user identifier; auto-detected when empty
	Agent  string           // agent token; DefaultAgent when empty
	Force  bool             // reprocess even when the marker is present
	Source string           // display name for the frontmatter source field
	Now    func() time.Time // injectable clock; time.Now when nil
}

// Result holds the outcome of a processing run.
type Result struct {
	Output  string
	Skipped bool // marker present and Force unset; Output == input
	Root    string
	Turns   int // user prompts found
}

// Process re-renders one raw transcript into the structured document.
// A document that already carries the processed marker is returned
// byte-identical unless Force is set.
func Process(text string, opts Options) (*Result, error) {
	if opts.Agent == "" {
		opts.Agent = DefaultAgent
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	if Processed(text) {
		if !opts.Force {
			return &Result{Output: text, Skipped: true}, nil
		}
		text = StripFrontmatter(text)
	}

	user := opts.User
	if user == "" {
		detected, err := source.DetectUser(text, opts.Agent)
		if err != nil {
			return nil, err
		}
		user = detected
	}

	root := project.Detect(text)
	rules := classify.NewRules(user, opts.Agent)

	segs := segment.Split(strings.Split(text, "\n"), rules)
	turns := segment.Merge(segs)

	prompts := 0
	for i := range turns {
		turns[i] = transformTurn(turns[i])
		if turns[i].Prompt != nil {
			prompts++
		}
	}

	body := render.Document(turns, render.Options{
		User:  user,
		Agent: opts.Agent,
		Root:  root,
	})

	src := opts.Source
	if src == "" {
		src = "stdin"
	}

	doc := render.FrontmatterBlock(root, src, now()) + "\n" + body
	doc = mdfmt.NormalizeTrailingSpace(doc)
	doc = mdfmt.CompactBlankLines(doc)
	doc = mdfmt.EnsureStructuralSpacing(doc)

	return &Result{Output: doc, Root: root, Turns: prompts}, nil
}

// transformTurn applies the per-segment pipeline: context references
// and hard breaks on prompts, the full pipeline on fused prose chunks
// (heading shifts and terminal inlining apply to agent text only). Action
// segments and orphan content are left alone; actions are simplified at
// render time instead.
func transformTurn(t segment.Turn) segment.Turn {
	if t.Prompt != nil {
		text := mdfmt.FormatContextRefs(t.Prompt.Text())
		text = mdfmt.InsertHardBreaks(text)
		p := segment.Segment{
			Kind:  segment.UserPrompt,
			Lines: strings.Split(text, "\n"),
		}
		t.Prompt = &p
	}

	for i, piece := range t.Body {
		if piece.Text == nil {
			continue
		}
		text := *piece.Text
		text = mdfmt.FormatContextRefs(text)
		text = mdfmt.ShiftHeadings(text)
		text = mdfmt.InlineTerminalCommands(text)
		text = mdfmt.InsertHardBreaks(text)
		t.Body[i] = segment.TextPiece(text)
	}

	return t
}
