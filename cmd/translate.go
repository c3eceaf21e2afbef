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
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BramscoChill/GoogleTranslateFreeApi/internal"
	"github.com/BramscoChill/GoogleTranslateFreeApi/internal/chunker"
	"github.com/BramscoChill/GoogleTranslateFreeApi/internal/detector"
	"github.com/BramscoChill/GoogleTranslateFreeApi/internal/language"
	"github.com/BramscoChill/GoogleTranslateFreeApi/internal/store"
	"github.com/BramscoChill/GoogleTranslateFreeApi/internal/translator"
	"github.com/BramscoChill/GoogleTranslateFreeApi/internal/validator"
)

var (
	sourceLang string
	targetLang string
	lite       bool

	dbPath  string
	noCache bool

	useOfficial bool
	credentials string

	localDetect bool
	verbose     bool
)

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate text through the free web endpoint",
	Long: `Translate text through the free, keyless web endpoint.

The full mode decodes everything the endpoint returns: translation,
transcription, spelling and language corrections, alternate translations,
synonyms, definitions, and see-also terms. --lite requests only the main
translation for lower latency.

Texts longer than the endpoint's request limit are split at sentence
boundaries and translated chunk by chunk.

--official switches to the credentialed Cloud Translation API, useful when
the free endpoint has banned your IP.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		ctx := context.Background()

		logger := zap.NewNop()
		if verbose {
			var err error
			if logger, err = zap.NewDevelopment(); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer logger.Sync()
		}

		from, err := resolveLanguage(sourceLang)
		if err != nil {
			return err
		}
		to, err := resolveLanguage(targetLang)
		if err != nil {
			return err
		}

		// Optionally resolve auto-detect offline, saving the server round
		// trip that detection would otherwise ride on.
		if localDetect && from.IsAuto() {
			if detected, ok := detector.New().Detect(text); ok {
				from = detected
				fmt.Fprintf(os.Stderr, "Detected source language: %s\n", from)
			}
		}

		var db *store.Store
		if !noCache && dbPath != "" {
			if db, err = store.New(dbPath); err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			if cached, found, cacheErr := db.Get(ctx, text, from.ISO639, to.ISO639, lite); cacheErr == nil && found {
				fmt.Fprintln(os.Stderr, "Using cached translation")
				printResult(cached)
				return nil
			}
		}

		res, err := runTranslation(ctx, text, from, to, logger)
		if err != nil {
			return err
		}

		if valid, verr := validator.New().IsValid(res.Translation(), to); !valid && verr != nil {
			fmt.Fprintf(os.Stderr, "Warning: result may not be in the target language: %v\n", verr)
		}

		if db != nil {
			reqID := uuid.New().String()
			_ = db.SaveRequest(ctx, internal.TranslationRequest{
				ID:         reqID,
				SourceText: text,
				SourceLang: from.ISO639,
				TargetLang: to.ISO639,
				Timestamp:  time.Now(),
			})
			_ = db.Save(ctx, text, from.ISO639, to.ISO639, lite, res)
		}

		printResult(res)
		return nil
	},
}

// runTranslation dispatches to the configured backend, splitting oversized
// inputs into endpoint-sized chunks.
func runTranslation(ctx context.Context, text string, from, to language.Language, logger *zap.Logger) (*translator.Result, error) {
	if useOfficial {
		return translator.NewOfficial(credentials).Translate(ctx, text, from, to)
	}

	client, err := translator.New(clientConfig(), logger)
	if err != nil {
		return nil, err
	}

	chunks := chunker.Split(text, chunker.MaxRequestRunes)
	if len(chunks) == 1 {
		return translateOne(ctx, client, text, from, to)
	}

	var merged *translator.Result
	for _, chunk := range chunks {
		res, err := translateOne(ctx, client, chunk, from, to)
		if err != nil {
			return nil, err
		}
		if merged == nil {
			merged = res
			continue
		}
		// Split trims the whitespace at chunk boundaries; restore it so the
		// reassembled translation does not glue sentences together.
		merged.FragmentedTranslation = append(merged.FragmentedTranslation, " ")
		merged.FragmentedTranslation = append(merged.FragmentedTranslation, res.FragmentedTranslation...)
	}
	merged.OriginalText = text
	return merged, nil
}

func translateOne(ctx context.Context, client *translator.Client, text string, from, to language.Language) (*translator.Result, error) {
	if lite {
		return client.TranslateLite(ctx, text, from, to)
	}
	return client.Translate(ctx, text, from, to)
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&sourceLang, "source", "s", "auto", "Source language code (auto = let the service detect)")
	translateCmd.Flags().StringVarP(&targetLang, "target", "t", "", "Target language code (required)")
	translateCmd.Flags().BoolVar(&lite, "lite", false, "Request only the main translation (faster, smaller payload)")

	translateCmd.Flags().BoolVar(&localDetect, "local-detect", false, "Resolve auto source offline before the request")
	translateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log decode anomalies and retries")

	translateCmd.Flags().StringVar(&dbPath, "db", "./data/gtfree.db", "Database path for translation memory")
	translateCmd.Flags().BoolVar(&noCache, "no-cache", false, "Disable translation memory cache")

	translateCmd.Flags().BoolVar(&useOfficial, "official", false, "Use the credentialed Cloud Translation API instead")
	translateCmd.Flags().StringVarP(&credentials, "credentials", "c", "", "Path to Google Cloud credentials (with --official)")

	translateCmd.MarkFlagRequired("target")
}
