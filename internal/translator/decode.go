package translator

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/BramscoChill/GoogleTranslateFreeApi/internal/language"
	"github.com/BramscoChill/GoogleTranslateFreeApi/internal/postprocess"
)

// The response is a JSON array whose element positions carry fixed meaning.
// Nothing in the payload is self-describing, so the index map below is the
// whole schema. Trailing sections are absent when the request did not ask
// for them.
const (
	idxMain         = 0  // [[translated, original, ...]...] + optional transcription tuple
	idxExtra        = 1  // part-of-speech keyed alternate translations
	idxSelectedLang = 2  // ISO code the request asked for
	idxConfidence   = 6  // detection confidence in [0,1]
	idxCorrections  = 7  // [correctionHTML, correctedText, ...]
	idxDetectedLang = 8  // [[detectedISO, ...], ...]
	idxSynonyms     = 11 // part-of-speech keyed, one nesting level deeper
	idxDefinitions  = 12 // same shape as synonyms
	idxSeeAlso      = 14 // [[term, ...]]
)

// decode converts the positional JSON array into a Result. Each optional
// block is checked for absence independently and defaults to empty; a
// malformed entry inside a block is logged and skipped, never fatal.
func decode(raw []byte, originalText string, from, to language.Language, includeExtras bool, log *zap.Logger) (*Result, error) {
	var root []any
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("translator: decode response: %w", err)
	}

	res := &Result{
		OriginalText:   originalText,
		SourceLanguage: from,
		TargetLanguage: to,
	}

	decodeMainBlock(res, sliceAt(root, idxMain))

	if includeExtras {
		res.ExtraTranslations = decodeInfoBlock(sliceAt(root, idxExtra), extraTranslationTags, flatEntries, log, "extra translations")
		res.Synonyms = decodeInfoBlock(sliceAt(root, idxSynonyms), synonymTags, nestedEntries, log, "synonyms")
		res.Definitions = decodeInfoBlock(sliceAt(root, idxDefinitions), definitionTags, nestedEntries, log, "definitions")
		res.SeeAlso = decodeSeeAlso(sliceAt(root, idxSeeAlso))
	}

	res.Corrections = decodeCorrections(root, from, res)

	return res, nil
}

// decodeMainBlock fills the translation fragments and transcriptions from
// the index-0 tuples. The trailing tuple is a transcription tuple when its
// leading element is not a translated fragment: with exactly 3 elements its
// last element is the translated-text transcription only; with more, a
// non-null second-to-last element is the translated-text transcription and
// the last is the original-text transcription; otherwise the last element
// alone is the translated-text transcription.
func decodeMainBlock(res *Result, block []any) {
	if len(block) == 0 {
		return
	}

	tuples := make([][]any, 0, len(block))
	for _, item := range block {
		if t := asSlice(item); t != nil {
			tuples = append(tuples, t)
		}
	}
	if len(tuples) == 0 {
		return
	}

	last := tuples[len(tuples)-1]
	if len(last) > 0 && str(last[0]) == "" {
		switch {
		case len(last) == 3:
			res.TranslatedTranscription = str(last[2])
		case len(last) > 3:
			if penultimate := str(last[len(last)-2]); penultimate != "" {
				res.TranslatedTranscription = penultimate
				res.OriginalTranscription = str(last[len(last)-1])
			} else {
				res.TranslatedTranscription = str(last[len(last)-1])
			}
		default:
			res.TranslatedTranscription = str(last[len(last)-1])
		}
		tuples = tuples[:len(tuples)-1]
	}

	for _, t := range tuples {
		if len(t) == 0 {
			continue
		}
		if frag := str(t[0]); frag != "" {
			res.FragmentedTranslation = append(res.FragmentedTranslation, frag)
		}
	}
}

// entryCollector extracts the string entries of one part-of-speech group.
type entryCollector func(entry []any) []string

// flatEntries reads the extra-translations shape: entry[1] is a flat list of
// alternate terms.
func flatEntries(entry []any) []string {
	return stringsOf(sliceAt(entry, 1))
}

// nestedEntries reads the synonyms/definitions shape, one nesting level
// deeper: entry[1] is a list of groups whose first element holds the value,
// either a bare string (definitions) or a list of strings (synonyms).
func nestedEntries(entry []any) []string {
	var out []string
	for _, group := range sliceAt(entry, 1) {
		g := asSlice(group)
		if len(g) == 0 {
			continue
		}
		if s := str(g[0]); s != "" {
			out = append(out, s)
			continue
		}
		out = append(out, stringsOf(asSlice(g[0]))...)
	}
	return out
}

// decodeInfoBlock maps a part-of-speech keyed block into an InfoTable.
// Unrecognized tags are ignored; a malformed entry is logged and skipped.
func decodeInfoBlock(block []any, recognized tagSet, collect entryCollector, log *zap.Logger, what string) *InfoTable {
	if len(block) == 0 {
		return nil
	}

	table := newInfoTable()
	for i, raw := range block {
		entry := asSlice(raw)
		if len(entry) < 2 {
			log.Warn("skipping malformed part-of-speech entry",
				zap.String("block", what), zap.Int("entry", i))
			continue
		}
		tag := normalizeTag(str(entry[0]))
		if _, ok := recognized[tag]; !ok {
			continue
		}
		items := collect(entry)
		if len(items) == 0 {
			log.Warn("part-of-speech entry carried no usable items",
				zap.String("block", what), zap.String("partOfSpeech", tag))
			continue
		}
		table.add(tag, items)
	}

	if table.Len() == 0 {
		return nil
	}
	return table
}

func decodeSeeAlso(block []any) []string {
	return stringsOf(sliceAt(block, 0))
}

// decodeCorrections combines the spelling block (index 7), the requested
// source code (index 2), the detected language (index 8), and the confidence
// score (index 6). When the request used auto-detect, the result's source
// language is resolved from the detected code.
func decodeCorrections(root []any, from language.Language, res *Result) Corrections {
	corr := Corrections{Confidence: floatAt(root, idxConfidence)}

	if block := sliceAt(root, idxCorrections); len(block) >= 2 {
		correctionHTML := str(block[0])
		correctedText := postprocess.Plain(str(block[1]))
		if correctedText != "" {
			corr.TextWasCorrected = true
			corr.CorrectedText = correctedText
			corr.CorrectedWords = postprocess.CorrectedWords(correctionHTML)
		}
	}

	selected := str(at(root, idxSelectedLang))
	detected := ""
	if block := sliceAt(root, idxDetectedLang); block != nil {
		detected = str(at(sliceAt(block, 0), 0))
	}

	if detected != "" {
		if lang, ok := language.FromISO(detected); ok {
			if from.IsAuto() {
				res.SourceLanguage = lang
			}
			if selected != "" && detected != selected {
				corr.LanguageWasCorrected = true
				corr.CorrectedLanguage = lang
			}
		}
	}

	return corr
}

// --- loosely-typed accessors ---
//
// Every block is optional and every element loosely typed, so access goes
// through these helpers: out-of-range or wrong-typed elements read as zero
// values instead of panicking.

func at(v []any, i int) any {
	if i < 0 || i >= len(v) {
		return nil
	}
	return v[i]
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func sliceAt(v []any, i int) []any {
	return asSlice(at(v, i))
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func floatAt(v []any, i int) float64 {
	f, _ := at(v, i).(float64)
	return f
}

func stringsOf(v []any) []string {
	var out []string
	for _, item := range v {
		if s := str(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
