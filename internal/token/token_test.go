package token

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// Fixtures captured from the frontend checksum for known seed/text pairs.
func TestTokenFor_Fixtures(t *testing.T) {
	tests := []struct {
		name string
		seed Seed
		text string
		want string
	}{
		{"ascii", Seed{406398, 2087938574}, "hello", "338590.203232"},
		{"ascii with space", Seed{406398, 2087938574}, "Hello world", "452588.54418"},
		{"other seed", Seed{441217, 281683508}, "Hello world", "106657.465696"},
		{"cyrillic", Seed{441217, 281683508}, "привет мир", "809038.713679"},
		{"cjk", Seed{441217, 281683508}, "こんにちは", "839908.682853"},
		{"surrogate pair", Seed{441217, 281683508}, "I 💖 Go", "393471.47998"},
		{"single space", Seed{441217, 281683508}, " ", "774763.879082"},
		{"zero seed", Seed{0, 0}, "a", "50242.50242"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenFor(tt.seed, tt.text)
			if got != tt.want {
				t.Errorf("tokenFor(%v, %q) = %q, want %q", tt.seed, tt.text, got, tt.want)
			}
		})
	}
}

func TestParseSeed(t *testing.T) {
	page := []byte(`<html><script>var x=1;tkk:'441217.281683508',foo:'bar'</script></html>`)
	seed, err := parseSeed(page)
	if err != nil {
		t.Fatalf("parseSeed failed: %v", err)
	}
	if seed.First != 441217 || seed.Second != 281683508 {
		t.Errorf("unexpected seed: %+v", seed)
	}
}

func TestParseSeed_AssignmentForm(t *testing.T) {
	page := []byte(`tkk="406398.2087938574"`)
	seed, err := parseSeed(page)
	if err != nil {
		t.Fatalf("parseSeed failed: %v", err)
	}
	if seed.First != 406398 || seed.Second != 2087938574 {
		t.Errorf("unexpected seed: %+v", seed)
	}
}

func TestParseSeed_Missing(t *testing.T) {
	if _, err := parseSeed([]byte("<html>nothing here</html>")); err == nil {
		t.Error("expected error for page without seed")
	}
}

func TestGenerator_ScrapesOnFirstUse(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`tkk:'441217.281683508'`))
	}))
	defer server.Close()

	g := NewGenerator(server.Client(), server.URL, "test-agent")

	tok, err := g.Generate(context.Background(), "Hello world")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if tok != "106657.465696" {
		t.Errorf("unexpected token: %q", tok)
	}

	// Second call reuses the cached seed.
	if _, err := g.Generate(context.Background(), "again"); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if hits != 1 {
		t.Errorf("expected 1 scrape, got %d", hits)
	}
}

func TestGenerator_SeedObsolete(t *testing.T) {
	g := NewGenerator(nil, "", "")
	g.SetSeed(Seed{441217, 281683508}, time.Now().Add(-2*time.Hour))

	if !g.Obsolete() {
		t.Error("expected seed to be obsolete")
	}
	_, err := g.Generate(context.Background(), "hello")
	if err != ErrSeedObsolete {
		t.Errorf("expected ErrSeedObsolete, got %v", err)
	}
}

func TestGenerator_RefreshReplacesSeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`tkk:'406398.2087938574'`))
	}))
	defer server.Close()

	g := NewGenerator(server.Client(), server.URL, "")
	g.SetSeed(Seed{1, 2}, time.Now())

	if err := g.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	tok, err := g.Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if tok != "338590.203232" {
		t.Errorf("expected token from refreshed seed, got %q", tok)
	}
}

func TestGenerator_RefreshBadPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("no seed here"))
	}))
	defer server.Close()

	g := NewGenerator(server.Client(), server.URL, "")
	if err := g.Refresh(context.Background()); err == nil {
		t.Error("expected error when seed is missing from the page")
	}
}

func TestStale(t *testing.T) {
	now := time.Date(2025, 3, 7, 14, 30, 0, 0, time.UTC)
	if stale(now.Add(-10*time.Minute), now) {
		t.Error("same hour window must not be stale")
	}
	if !stale(now.Add(-45*time.Minute), now) {
		t.Error("crossing the hour boundary must be stale")
	}
}
