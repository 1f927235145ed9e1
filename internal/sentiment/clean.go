package sentiment

import (
	"regexp"
	"strings"
)

var (
	urlPattern     = regexp.MustCompile(`http\S+|www\S+|https\S+`)
	mentionPattern = regexp.MustCompile(`@\w+`)
	nonWordPattern = regexp.MustCompile(`[^\w\s]`)
	spacesPattern  = regexp.MustCompile(`\s+`)
)

// CleanText normalizes a tweet's text for classification: URLs and @mentions
// are dropped, hashtag markers are stripped (the tag text is kept), every
// non-word rune goes away and whitespace runs collapse to a single space.
// The result is trimmed and lowercased. Idempotent.
func CleanText(text string) string {
	text = urlPattern.ReplaceAllString(text, "")
	text = mentionPattern.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "#", "")
	text = nonWordPattern.ReplaceAllString(text, "")
	text = spacesPattern.ReplaceAllString(text, " ")

	return strings.ToLower(strings.TrimSpace(text))
}
