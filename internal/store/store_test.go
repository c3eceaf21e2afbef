package store

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/BramscoChill/GoogleTranslateFreeApi/internal"
	"github.com/BramscoChill/GoogleTranslateFreeApi/internal/language"
	"github.com/BramscoChill/GoogleTranslateFreeApi/internal/translator"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleResult() *translator.Result {
	en, _ := language.FromISO("en")
	de, _ := language.FromISO("de")
	return &translator.Result{
		OriginalText:            "Hello world",
		SourceLanguage:          en,
		TargetLanguage:          de,
		FragmentedTranslation:   []string{"Hallo ", "Welt"},
		TranslatedTranscription: "halo velt",
		Corrections: translator.Corrections{
			Confidence: 0.98,
		},
		SeeAlso: []string{"Weltfrieden"},
	}
}

func TestStore_New_InvalidPath(t *testing.T) {
	if _, err := New("/nonexistent/path/test.db"); err == nil {
		t.Error("expected error for invalid path")
	}
}

func TestStore_SaveRequest(t *testing.T) {
	s := testStore(t)

	req := internal.TranslationRequest{
		ID:         "req-1",
		SourceText: "Hello world",
		SourceLang: "en",
		TargetLang: "de",
		Timestamp:  time.Now(),
	}
	if err := s.SaveRequest(context.Background(), req); err != nil {
		t.Errorf("SaveRequest failed: %v", err)
	}
}

func TestStore_SaveAndGet_RoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	want := sampleResult()

	if err := s.Save(ctx, "Hello world", "en", "de", false, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, found, err := s.Get(ctx, "Hello world", "en", "de", false)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Fatal("expected a cache hit")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestStore_Get_Miss(t *testing.T) {
	s := testStore(t)

	_, found, err := s.Get(context.Background(), "never seen", "en", "de", false)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Error("expected a miss")
	}
}

func TestStore_LiteAndFullAreSeparate(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "Hello", "en", "de", true, sampleResult()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, found, _ := s.Get(ctx, "Hello", "en", "de", false); found {
		t.Error("a lite entry must not satisfy a full lookup")
	}
	if _, found, _ := s.Get(ctx, "Hello", "en", "de", true); !found {
		t.Error("expected the lite entry to be found")
	}
}

func TestStore_NormalizedKeys(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "  Hello world  ", "en", "de", false, sampleResult()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, found, _ := s.Get(ctx, "Hello world", "en", "de", false); !found {
		t.Error("whitespace differences must not defeat the cache key")
	}
}

func TestStore_ListDeleteClear(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_ = s.Save(ctx, "one", "en", "de", false, sampleResult())
	_ = s.Save(ctx, "two", "en", "fr", false, sampleResult())

	entries, err := s.ListMemory(ctx)
	if err != nil {
		t.Fatalf("ListMemory failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if err := s.DeleteMemory(ctx, entries[0].ID); err != nil {
		t.Fatalf("DeleteMemory failed: %v", err)
	}

	n, err := s.ClearMemory(ctx)
	if err != nil {
		t.Fatalf("ClearMemory failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 remaining entry cleared, got %d", n)
	}
}

func TestStore_Stats(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_ = s.Save(ctx, "one", "en", "de", false, sampleResult())
	_ = s.Save(ctx, "two", "en", "de", true, sampleResult())
	_, _, _ = s.Get(ctx, "one", "en", "de", false)

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalEntries != 2 {
		t.Errorf("expected 2 entries, got %d", stats.TotalEntries)
	}
	if stats.LiteEntries != 1 {
		t.Errorf("expected 1 lite entry, got %d", stats.LiteEntries)
	}
	if stats.TotalUsage != 3 {
		t.Errorf("expected usage 3, got %d", stats.TotalUsage)
	}
}
