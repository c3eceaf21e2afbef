package translator

import (
	"net/url"

	"github.com/BramscoChill/GoogleTranslateFreeApi/internal/language"
)

// Data-type flags controlling which response sections the service includes.
// The lite set drops the dictionary-style sections for a smaller payload.
var (
	fullDataFlags = []string{"at", "bd", "ex", "ld", "md", "qca", "rw", "rm", "ss", "t"}
	liteDataFlags = []string{"t", "ld", "qca", "rm"}
)

// validatePair fails fast, before any network call, when either language is
// outside the catalog or the target is the auto-detect sentinel.
func validatePair(from, to language.Language) error {
	if !language.Supported(from) {
		return &UnsupportedLanguageError{Code: from.ISO639}
	}
	if !language.Supported(to) {
		return &UnsupportedLanguageError{Code: to.ISO639}
	}
	if to.IsAuto() {
		return ErrTargetIsAuto
	}
	return nil
}

// buildURL assembles the single GET against /translate_a/single.
func buildURL(baseURL, text string, from, to language.Language, token string, full bool) string {
	flags := fullDataFlags
	if !full {
		flags = liteDataFlags
	}

	q := url.Values{}
	q.Set("client", "t")
	q.Set("sl", from.ISO639)
	q.Set("tl", to.ISO639)
	q.Set("hl", "en")
	for _, dt := range flags {
		q.Add("dt", dt)
	}
	q.Set("ie", "UTF-8")
	q.Set("oe", "UTF-8")
	q.Set("otf", "1")
	q.Set("ssel", "0")
	q.Set("tsel", "0")
	q.Set("kc", "7")
	q.Set("q", text)
	q.Set("tk", token)

	return baseURL + "/translate_a/single?" + q.Encode()
}
