package segment

// Merge groups the flat segment list into turns: each UserPrompt plus
// one fused response holding everything up to the next UserPrompt.
// Prose chunks and action references keep their encounter order.
// Segments before the first prompt pass through as an orphan turn.
func Merge(segs []Segment) []Turn {
	var turns []Turn
	var orphan []Segment
	var cur *Turn

	for _, seg := range segs {
		if seg.Kind == UserPrompt {
			if cur != nil {
				turns = append(turns, *cur)
			} else if len(orphan) > 0 {
				turns = append(turns, Turn{Raw: orphan})
				orphan = nil
			}
			prompt := seg
			cur = &Turn{Prompt: &prompt}
			continue
		}

		if cur == nil {
			orphan = append(orphan, seg)
			continue
		}

		switch seg.Kind {
		case ToolAction:
			cur.Body = append(cur.Body, ActionPiece(len(cur.Actions)))
			cur.Actions = append(cur.Actions, seg)
		default:
			cur.Body = append(cur.Body, TextPiece(seg.Text()))
		}
	}

	if cur != nil {
		turns = append(turns, *cur)
	} else if len(orphan) > 0 {
		turns = append(turns, Turn{Raw: orphan})
	}

	return turns
}
