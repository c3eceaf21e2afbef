// Package validator checks that a translation result is in the expected
// target language, catching the cases where the endpoint silently echoes the
// input back (a known symptom of soft rate limiting).
package validator

import (
	"fmt"
	"strings"

	"github.com/BramscoChill/GoogleTranslateFreeApi/internal/detector"
	"github.com/BramscoChill/GoogleTranslateFreeApi/internal/language"
)

// minValidationRunes is the minimum rune count required to attempt language
// detection. Shorter texts produce unreliable results and pass unvalidated.
const minValidationRunes = 20

// Validator checks translated text against the requested target language.
type Validator struct {
	det *detector.Detector
}

func New() *Validator {
	return &Validator{det: detector.New()}
}

// IsValid reports whether translatedText appears to be written in target.
// Short texts and texts whose language cannot be determined pass without
// error. On a mismatch the returned error names both languages.
func (v *Validator) IsValid(translatedText string, target language.Language) (bool, error) {
	text := strings.TrimSpace(translatedText)
	if text == "" {
		return false, fmt.Errorf("translation is empty")
	}

	if len([]rune(text)) < minValidationRunes {
		return true, nil
	}

	detected, ok := v.det.Detect(text)
	if !ok {
		return true, nil
	}

	if !detected.Equal(target) {
		return false, fmt.Errorf("expected %s but detected %s", target, detected)
	}
	return true, nil
}
