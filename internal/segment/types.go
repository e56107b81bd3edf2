package segment

import "strings"

// Kind labels a typed run of transcript lines.
type Kind int

const (
	// Unknown covers content seen before any speaker boundary.
	Unknown Kind = iota
	// UserPrompt is one user utterance.
	UserPrompt
	// AgentResponse is agent prose.
	AgentResponse
	// ToolAction is a run of machine-generated action lines.
	ToolAction
)

func (k Kind) String() string {
	switch k {
	case UserPrompt:
		return "user"
	case AgentResponse:
		return "agent"
	case ToolAction:
		return "action"
	default:
		return "unknown"
	}
}

// Segment is one typed run of lines. Segments are never emitted empty,
// and once emitted they are not mutated.
type Segment struct {
	Kind  Kind
	Lines []string
}

// Text joins the segment's lines back into a block.
func (s Segment) Text() string {
	return strings.Join(s.Lines, "\n")
}

// Piece is one element of a fused response body. Exactly one field is
// set: Text carries a literal prose chunk, Action references an index
// into the owning turn's Actions list. Using a structural reference
// instead of an in-band marker string means prose that happens to look
// like a placeholder can never collide with one.
type Piece struct {
	Text   *string
	Action *int
}

// TextPiece wraps a prose chunk as a body piece.
func TextPiece(text string) Piece {
	return Piece{Text: &text}
}

// ActionPiece wraps an action index as a body piece.
func ActionPiece(index int) Piece {
	return Piece{Action: &index}
}

// Turn is one user prompt plus everything produced in reply before the
// next prompt. Body interleaves prose chunks and action references in
// encounter order; Actions holds the referenced action segments.
// Content seen before the first prompt forms an orphan turn: Prompt is
// nil and the untouched segments are carried in Raw.
type Turn struct {
	Prompt  *Segment
	Body    []Piece
	Actions []Segment
	Raw     []Segment
}
