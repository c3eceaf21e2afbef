package translator

import (
	"context"
	"fmt"

	gtranslate "cloud.google.com/go/translate"
	langtag "golang.org/x/text/language"
	"google.golang.org/api/option"

	"github.com/BramscoChill/GoogleTranslateFreeApi/internal/language"
)

// Official translates through the credentialed Cloud Translation API instead
// of the free web endpoint. It is the escape hatch for callers whose IP the
// free endpoint has banned. The official API returns no dictionary extras,
// so only the main translation fields are filled.
type Official struct {
	credentialsFile string
}

// NewOfficial creates an Official backend. credentialsFile may be empty to
// use ambient application-default credentials.
func NewOfficial(credentialsFile string) *Official {
	return &Official{credentialsFile: credentialsFile}
}

// Translate satisfies the same (text, from, to) → Result contract as Client.
func (o *Official) Translate(ctx context.Context, text string, from, to language.Language) (*Result, error) {
	if err := validatePair(from, to); err != nil {
		return nil, err
	}

	target, err := langtag.Parse(to.ISO639)
	if err != nil {
		return nil, fmt.Errorf("translator: parse target language: %w", err)
	}

	var opts []option.ClientOption
	if o.credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(o.credentialsFile))
	}
	client, err := gtranslate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("translator: create official client: %w", err)
	}
	defer client.Close()

	var apiOpts *gtranslate.Options
	if !from.IsAuto() {
		source, err := langtag.Parse(from.ISO639)
		if err != nil {
			return nil, fmt.Errorf("translator: parse source language: %w", err)
		}
		apiOpts = &gtranslate.Options{Source: source}
	}

	translations, err := client.Translate(ctx, []string{text}, target, apiOpts)
	if err != nil {
		return nil, fmt.Errorf("translator: official translate: %w", err)
	}
	if len(translations) == 0 {
		return nil, fmt.Errorf("translator: official API returned no translation")
	}

	res := &Result{
		OriginalText:          text,
		SourceLanguage:        from,
		TargetLanguage:        to,
		FragmentedTranslation: []string{translations[0].Text},
		Corrections:           Corrections{Confidence: 1},
	}
	if from.IsAuto() {
		if detected, ok := language.FromISO(translations[0].Source.String()); ok {
			res.SourceLanguage = detected
		}
	}
	return res, nil
}
