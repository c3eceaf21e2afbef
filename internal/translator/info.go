package translator

import "strings"

// InfoTable is an ordered mapping from a part-of-speech tag to its entries.
// The extra-translations, synonyms, and definitions blocks all share this
// shape; they differ only in which tags they recognize and how deep the
// entries nest in the wire format.
type InfoTable struct {
	Order   []string            `json:"order"`
	Entries map[string][]string `json:"entries"`
}

func newInfoTable() *InfoTable {
	return &InfoTable{Entries: make(map[string][]string)}
}

func (t *InfoTable) add(tag string, items []string) {
	if len(items) == 0 {
		return
	}
	if _, seen := t.Entries[tag]; !seen {
		t.Order = append(t.Order, tag)
	}
	t.Entries[tag] = append(t.Entries[tag], items...)
}

// Get returns the entries recorded for tag, in wire order.
func (t *InfoTable) Get(tag string) []string {
	if t == nil {
		return nil
	}
	return t.Entries[tag]
}

// Len returns the number of distinct tags recorded.
func (t *InfoTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Order)
}

// tagSet is the fixed set of part-of-speech tags a block variant recognizes.
// Tags are matched after lowercasing and stripping embedded whitespace, so
// "auxiliary verb" keys the same entry as "auxiliaryverb".
type tagSet map[string]struct{}

func newTagSet(tags ...string) tagSet {
	s := make(tagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// normalizeTag canonicalizes a wire part-of-speech tag for set lookup.
func normalizeTag(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), ""))
}

var (
	extraTranslationTags = newTagSet(
		"noun", "verb", "adjective", "adverb", "preposition", "abbreviation",
		"conjunction", "pronoun", "interjection", "phrase", "prefix", "suffix",
		"article", "numeral", "auxiliaryverb", "exclamation", "particle",
	)
	synonymTags = newTagSet(
		"noun", "verb", "adjective", "adverb", "exclamation",
	)
	definitionTags = newTagSet(
		"noun", "verb", "adjective", "adverb", "exclamation", "abbreviation",
	)
)
