// Package postprocess cleans HTML artifacts out of raw translation-service
// output before it reaches the decoded result.
//
// The spelling-correction block of the response embeds the corrected words
// inside <b><i>…</i></b> markup and HTML-escapes the surrounding text; this
// package extracts the words and restores plain text.
package postprocess

import (
	"html"
	"regexp"
	"strings"
)

var (
	correctedWordRe = regexp.MustCompile(`<b><i>(.*?)</i></b>`)
	tagRe           = regexp.MustCompile(`<[^>]+>`)
)

// CorrectedWords returns the words wrapped in <b><i>…</i></b> markers, in
// document order, with HTML entities unescaped. A fragment without markers
// yields an empty slice.
func CorrectedWords(fragment string) []string {
	matches := correctedWordRe.FindAllStringSubmatch(fragment, -1)
	words := make([]string, 0, len(matches))
	for _, m := range matches {
		w := strings.TrimSpace(html.UnescapeString(m[1]))
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// Plain strips all tags from an HTML fragment and unescapes entities.
func Plain(fragment string) string {
	return strings.TrimSpace(html.UnescapeString(tagRe.ReplaceAllString(fragment, "")))
}
