package chunker

import (
	"strings"
	"testing"
)

func TestSplit_ShortTextUntouched(t *testing.T) {
	chunks := Split("hello world", 100)
	if len(chunks) != 1 || chunks[0] != "hello world" {
		t.Errorf("unexpected chunks: %v", chunks)
	}
}

func TestSplit_DisabledLimit(t *testing.T) {
	text := strings.Repeat("a", 100)
	chunks := Split(text, 0)
	if len(chunks) != 1 {
		t.Errorf("limit <= 0 must not split, got %d chunks", len(chunks))
	}
}

func TestSplit_PrefersParagraphBreak(t *testing.T) {
	text := "First paragraph here.\n\nSecond paragraph follows with more words."
	chunks := Split(text, 30)
	if len(chunks) < 2 {
		t.Fatalf("expected a split, got %v", chunks)
	}
	if chunks[0] != "First paragraph here.\n\n" && chunks[0] != "First paragraph here." {
		t.Errorf("expected first chunk to end at the paragraph break, got %q", chunks[0])
	}
}

func TestSplit_PrefersSentenceBoundary(t *testing.T) {
	text := "One sentence here. Another sentence that keeps going for a while."
	chunks := Split(text, 30)
	if len(chunks) < 2 {
		t.Fatalf("expected a split, got %v", chunks)
	}
	if !strings.HasSuffix(chunks[0], ".") {
		t.Errorf("expected sentence-boundary split, got %q", chunks[0])
	}
}

func TestSplit_FallsBackToWhitespace(t *testing.T) {
	text := "word " + strings.Repeat("x", 40) + " tail"
	chunks := Split(text, 30)
	for _, c := range chunks[:len(chunks)-1] {
		if len([]rune(c)) > 30 {
			t.Errorf("chunk exceeds limit: %q", c)
		}
	}
}

func TestSplit_HardCutWithoutBoundaries(t *testing.T) {
	text := strings.Repeat("a", 70)
	chunks := Split(text, 30)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if rejoined := strings.Join(chunks, ""); rejoined != text {
		t.Error("hard-cut chunks must rejoin to the original text")
	}
}

func TestSplit_NoChunkExceedsLimit(t *testing.T) {
	text := strings.Repeat("Sentence of a modest size goes here. ", 50)
	for _, c := range Split(text, 100) {
		if n := len([]rune(c)); n > 100 {
			t.Errorf("chunk of %d runes exceeds limit", n)
		}
	}
}
