package translator

import (
	"strings"
	"time"

	"github.com/BramscoChill/GoogleTranslateFreeApi/internal/language"
)

// Config carries the client settings loaded from flags or the config file.
type Config struct {
	Domain  string        `mapstructure:"domain" json:"domain"`
	Proxy   string        `mapstructure:"proxy" json:"proxy"`
	Timeout time.Duration `mapstructure:"timeout" json:"timeout"`
}

// Result is the decoded outcome of a single translation. It is created fresh
// per request and not mutated afterwards.
type Result struct {
	OriginalText   string            `json:"original_text"`
	SourceLanguage language.Language `json:"source_language"`
	TargetLanguage language.Language `json:"target_language"`

	// FragmentedTranslation holds the translated text in the sentence
	// fragments the service returned, in order. Concatenated they
	// reconstruct the full translated text.
	FragmentedTranslation []string `json:"fragmented_translation"`

	TranslatedTranscription string `json:"translated_transcription,omitempty"`
	OriginalTranscription   string `json:"original_transcription,omitempty"`

	Corrections Corrections `json:"corrections"`

	ExtraTranslations *InfoTable `json:"extra_translations,omitempty"`
	Synonyms          *InfoTable `json:"synonyms,omitempty"`
	Definitions       *InfoTable `json:"definitions,omitempty"`
	SeeAlso           []string   `json:"see_also,omitempty"`
}

// Translation returns the full translated text, reassembled from fragments.
func (r *Result) Translation() string {
	return strings.Join(r.FragmentedTranslation, "")
}

// Corrections records what the service silently fixed about the request.
type Corrections struct {
	TextWasCorrected bool     `json:"text_was_corrected"`
	CorrectedText    string   `json:"corrected_text,omitempty"`
	CorrectedWords   []string `json:"corrected_words,omitempty"`

	LanguageWasCorrected bool              `json:"language_was_corrected"`
	CorrectedLanguage    language.Language `json:"corrected_language,omitempty"`

	// Confidence is the service's detection confidence in [0,1].
	Confidence float64 `json:"confidence"`
}
