package boletin

import (
	"regexp"
	"strings"
)

var (
	horizontalSpaceRe = regexp.MustCompile(`[ \t]+`)
	newlineRunRe      = regexp.MustCompile(`\n+`)
	paddedNewlineRe   = regexp.MustCompile(` *\n *`)
)

// CleanText normalizes whitespace in gazette body text while preserving
// paragraph breaks. Line-ending variants become a single newline,
// runs of spaces and tabs collapse to one space, runs of newlines
// collapse to one with adjacent spaces dropped, and surrounding
// whitespace is trimmed. Empty input yields empty output.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = horizontalSpaceRe.ReplaceAllString(text, " ")
	text = newlineRunRe.ReplaceAllString(text, "\n")
	text = paddedNewlineRe.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}

// SegmentText splits cleaned text into paragraphs: pieces separated by
// one or more newlines, trimmed, with empty pieces discarded and order
// preserved. Applying it to its own joined output yields the same
// segments.
func SegmentText(text string) []string {
	if text == "" {
		return nil
	}
	pieces := newlineRunRe.Split(text, -1)
	segments := make([]string, 0, len(pieces))
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		segments = append(segments, p)
	}
	return segments
}
