package document

import (
	"strings"

	"github.com/suykerbuyk/chatmark/internal/classify"
	"github.com/suykerbuyk/chatmark/internal/segment"
	"github.com/suykerbuyk/chatmark/internal/source"
	"github.com/suykerbuyk/chatmark/internal/stats"
)

// Analyze runs the core up to the merger and returns structure counts,
// without rendering or writing anything. Already-processed documents
// are analyzed from their stripped form.
func Analyze(text string, opts Options) (stats.Summary, error) {
	if opts.Agent == "" {
		opts.Agent = DefaultAgent
	}
	if Processed(text) {
		text = StripFrontmatter(text)
	}

	user := opts.User
	if user == "" {
		detected, err := source.DetectUser(text, opts.Agent)
		if err != nil {
			return stats.Summary{}, err
		}
		user = detected
	}

	rules := classify.NewRules(user, opts.Agent)
	turns := segment.Merge(segment.Split(strings.Split(text, "\n"), rules))
	return stats.Collect(turns, rules), nil
}
