package sentiment

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
	mentionPattern      = regexp.MustCompile(`@\w+|#\w+`)
	htmlTagPattern      = regexp.MustCompile(`<[^>]+>`)
)

// Normalize cleans raw text for scoring: URLs, then @mentions and #hashtags,
// then whitespace runs collapsed to a single space with the result trimmed.
// Never fails; the worst case is an empty string.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	text := urlPattern.ReplaceAllString(raw, "")
	text = mentionPattern.ReplaceAllString(text, "")

	return strings.Join(strings.Fields(text), " ")
}

// MarkdownToText renders markdown (reddit selftext) and strips the resulting
// markup so only plain prose reaches the scorers.
func MarkdownToText(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1") // keep only the link text

	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := htmlTagPattern.ReplaceAllString(string(output), " ")

	return strings.Join(strings.Fields(plain), " ")
}
