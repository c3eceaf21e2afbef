// Package detector wraps offline language detection. The CLI uses it to
// resolve the auto-detect sentinel locally before spending a network round
// trip, and the validator uses it to sanity-check translation output.
package detector

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"

	"github.com/BramscoChill/GoogleTranslateFreeApi/internal/language"
)

// Detector identifies the language a text is written in. Building one is
// expensive; reuse the instance.
type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build(),
	}
}

// Detect returns the catalog entry for the detected language of text.
// ok is false when the text is empty, the detection is ambiguous, or the
// detected language is not in the catalog.
func (d *Detector) Detect(text string) (language.Language, bool) {
	if strings.TrimSpace(text) == "" {
		return language.Language{}, false
	}
	detected, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return language.Language{}, false
	}
	return language.FromISO(strings.ToLower(detected.IsoCode639_1().String()))
}
