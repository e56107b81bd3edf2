package mdfmt

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

// Inline reference links as the chat exporter writes them:
// [label](file:///abs/path), optionally with a #fragment.
var refPattern = regexp.MustCompile(`\[([^\]]*)\]\((file://[^)\s]+)\)`)

// Range fragments like "10-20" or "L10-L20" mark editor selections.
var selectionFragment = regexp.MustCompile(`^L?\d+(?:-L?\d+)?$`)

// FormatContextRefs rewrites inline reference links into an
// emoji-prefixed inline-code display form. Four kinds are recognized:
// folder (target ends in a slash), selection (numeric range fragment),
// symbol (any other fragment), and plain file. This transform runs
// uniformly, without fence guarding.
func FormatContextRefs(text string) string {
	return refPattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := refPattern.FindStringSubmatch(m)
		label, target := sub[1], sub[2]

		rest := strings.TrimPrefix(target, "file://")
		pathPart, fragment, _ := strings.Cut(rest, "#")

		if label == "" {
			label = displayBase(pathPart)
		}

		switch {
		case strings.HasSuffix(pathPart, "/"):
			return "📁 `" + label + "`"
		case fragment != "" && selectionFragment.MatchString(fragment):
			return "✂️ `" + label + "`"
		case fragment != "":
			return "🔣 `" + label + "`"
		default:
			return "📄 `" + label + "`"
		}
	})
}

// displayBase returns the decoded base name of a reference path.
func displayBase(p string) string {
	p = strings.TrimSuffix(p, "/")
	if decoded, err := url.PathUnescape(p); err == nil {
		p = decoded
	}
	return path.Base(p)
}
