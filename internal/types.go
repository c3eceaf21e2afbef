package internal

import "time"

// TranslationRequest is the record a translation job is stored under.
type TranslationRequest struct {
	ID         string    `json:"id"`
	SourceText string    `json:"source_text"`
	SourceLang string    `json:"source_lang"`
	TargetLang string    `json:"target_lang"`
	Timestamp  time.Time `json:"timestamp"`
}
