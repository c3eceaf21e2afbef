// Package chunker splits long inputs into pieces the translation endpoint
// will accept. The free endpoint rejects queries beyond a few thousand
// characters, so oversized texts are translated chunk by chunk and the
// fragments concatenated.
package chunker

import (
	"strings"
	"unicode"
)

// MaxRequestRunes is the largest text the endpoint reliably accepts in a
// single query.
const MaxRequestRunes = 5000

// Split cuts text into chunks of at most maxRunes code points, preferring
// boundaries in this order: paragraph break, sentence-ending punctuation
// followed by space, whitespace, hard cut. maxRunes <= 0 disables splitting.
func Split(text string, maxRunes int) []string {
	if maxRunes <= 0 || len([]rune(text)) <= maxRunes {
		return []string{text}
	}

	var chunks []string
	remaining := text
	for len([]rune(remaining)) > maxRunes {
		cut := boundary([]rune(remaining), maxRunes)
		chunk := strings.TrimRight(remaining[:cut], " \t")
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		remaining = strings.TrimLeft(remaining[cut:], " \t")
	}
	if remaining != "" {
		chunks = append(chunks, remaining)
	}
	return chunks
}

// boundary returns the byte offset to cut runes at, searching backwards from
// maxRunes for the best break point.
func boundary(runes []rune, maxRunes int) int {
	window := runes[:maxRunes]

	// Paragraph break.
	if idx := strings.LastIndex(string(window), "\n\n"); idx > 0 {
		return idx + 2
	}

	// Sentence end followed by a space.
	for i := maxRunes - 2; i > 0; i-- {
		r := window[i]
		if (r == '.' || r == '!' || r == '?') && unicode.IsSpace(window[i+1]) {
			return len(string(window[:i+1]))
		}
	}

	// Any whitespace.
	for i := maxRunes - 1; i > 0; i-- {
		if unicode.IsSpace(window[i]) {
			return len(string(window[:i]))
		}
	}

	return len(string(window))
}
