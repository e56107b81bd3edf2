package project

import (
	"log"
	"net/url"
	"path"
	"regexp"
	"strings"
)

// Reference links and bare URIs that carry an absolute project path.
var uriPattern = regexp.MustCompile(`file://(/[^)\s\]#]*)`)

// Link form used by action lines: [label](file:///path).
var linkPattern = regexp.MustCompile(`\[[^\]]*\]\((file://[^)\s]+)\)`)

// Detect derives the project root for a document: the longest common
// directory prefix of every file:// path it mentions. Returns "" when
// the document references no paths. The root is recomputed per
// document, never cached.
func Detect(text string) string {
	matches := uriPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return ""
	}

	common := path.Dir(matches[0][1])
	for _, m := range matches[1:] {
		common = commonDir(common, path.Dir(m[1]))
		if common == "/" {
			break
		}
	}
	if common == "." || common == "" {
		return ""
	}
	return common
}

// commonDir returns the deepest directory shared by a and b.
func commonDir(a, b string) string {
	if a == b {
		return a
	}
	as := strings.Split(strings.Trim(a, "/"), "/")
	bs := strings.Split(strings.Trim(b, "/"), "/")
	var shared []string
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] != bs[i] {
			break
		}
		shared = append(shared, as[i])
	}
	if len(shared) == 0 {
		return "/"
	}
	return "/" + strings.Join(shared, "/")
}

// Simplify rewrites the file references in one action line for display:
// the detected root is stripped and only the base name is shown, as
// inline code. Percent-encoded names are decoded; on decode failure the
// original text is kept and a warning is logged.
func Simplify(line, root string) string {
	return linkPattern.ReplaceAllStringFunc(line, func(m string) string {
		sub := linkPattern.FindStringSubmatch(m)
		p := strings.TrimPrefix(sub[1], "file://")
		p, _, _ = strings.Cut(p, "#")

		decoded, err := url.PathUnescape(p)
		if err != nil {
			log.Printf("warning: could not decode path %q: %v", p, err)
			return m
		}

		if root != "" {
			decoded = strings.TrimPrefix(decoded, root+"/")
		}
		return "`" + path.Base(decoded) + "`"
	})
}
