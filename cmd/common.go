/*
Copyright © 2025 The GoogleTranslateFreeApi Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/BramscoChill/GoogleTranslateFreeApi/internal/language"
	"github.com/BramscoChill/GoogleTranslateFreeApi/internal/translator"
)

// resolveLanguage maps a CLI language code onto the catalog.
func resolveLanguage(code string) (language.Language, error) {
	l, ok := language.FromISO(code)
	if !ok {
		return language.Language{}, fmt.Errorf("unsupported language code %q (see \"gtfree languages\")", code)
	}
	return l, nil
}

// printResult renders a decoded result for the terminal.
func printResult(res *translator.Result) {
	fmt.Println(res.Translation())

	if res.TranslatedTranscription != "" {
		fmt.Fprintf(os.Stderr, "Transcription: %s\n", res.TranslatedTranscription)
	}
	if res.OriginalTranscription != "" {
		fmt.Fprintf(os.Stderr, "Original transcription: %s\n", res.OriginalTranscription)
	}

	corr := res.Corrections
	if corr.TextWasCorrected {
		fmt.Fprintf(os.Stderr, "Input auto-corrected to: %s", corr.CorrectedText)
		if len(corr.CorrectedWords) > 0 {
			fmt.Fprintf(os.Stderr, " (corrected: %s)", strings.Join(corr.CorrectedWords, ", "))
		}
		fmt.Fprintln(os.Stderr)
	}
	if corr.LanguageWasCorrected {
		fmt.Fprintf(os.Stderr, "Source language corrected to %s (confidence %.2f)\n",
			corr.CorrectedLanguage, corr.Confidence)
	}

	printInfoTable("Extra translations", res.ExtraTranslations)
	printInfoTable("Synonyms", res.Synonyms)
	printInfoTable("Definitions", res.Definitions)

	if len(res.SeeAlso) > 0 {
		fmt.Fprintf(os.Stderr, "See also: %s\n", strings.Join(res.SeeAlso, ", "))
	}
}

func printInfoTable(title string, table *translator.InfoTable) {
	if table.Len() == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "%s:\n", title)
	w := tabwriter.NewWriter(os.Stderr, 0, 0, 2, ' ', 0)
	for _, tag := range table.Order {
		fmt.Fprintf(w, "  %s\t%s\n", tag, strings.Join(table.Get(tag), ", "))
	}
	w.Flush()
}
