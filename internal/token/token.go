// Package token forges the per-request signing token the translation
// endpoint expects. The token is derived from a secret seed embedded in the
// service's landing page; the seed rotates hourly and has to be re-scraped
// when it goes stale.
package token

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"sync"
	"time"
)

// ErrSeedObsolete signals that the cached signing seed has rotated out.
// It is not user-visible: the caller refreshes the seed and retries the
// whole translation once.
var ErrSeedObsolete = errors.New("token: signing seed is obsolete")

// Seed is the pair of integers scraped from the landing page. It is opaque;
// only tokenFor knows how to consume it.
type Seed struct {
	First  int64
	Second int64
}

var seedPattern = regexp.MustCompile(`tkk\s*[:=]\s*['"](\d+)\.(\d+)['"]`)

// Generator computes signing tokens, lazily scraping and caching the seed.
// A single instance is shared by all concurrent translations of a client;
// concurrent refreshes are tolerated, last write wins.
type Generator struct {
	client    *http.Client
	pageURL   string
	userAgent string

	mu        sync.Mutex
	seed      *Seed
	fetchedAt time.Time
}

// NewGenerator creates a Generator scraping pageURL (the service's landing
// page) with the given HTTP client and User-Agent.
func NewGenerator(client *http.Client, pageURL, userAgent string) *Generator {
	return &Generator{
		client:    client,
		pageURL:   pageURL,
		userAgent: userAgent,
	}
}

// SetSeed installs a seed obtained elsewhere (a persisted cache, a test
// fixture), bypassing the scrape. fetchedAt records when the seed was
// minted; staleness is judged against it.
func (g *Generator) SetSeed(s Seed, fetchedAt time.Time) {
	g.mu.Lock()
	g.seed = &s
	g.fetchedAt = fetchedAt
	g.mu.Unlock()
}

// Generate returns the signing token for text. The first call scrapes the
// seed from the landing page; subsequent calls reuse it. When the cached
// seed's hour window has passed, Generate returns ErrSeedObsolete instead of
// refreshing, so the caller can retry the whole operation with a fresh seed.
func (g *Generator) Generate(ctx context.Context, text string) (string, error) {
	g.mu.Lock()
	seed := g.seed
	fetchedAt := g.fetchedAt
	g.mu.Unlock()

	if seed == nil {
		if err := g.Refresh(ctx); err != nil {
			return "", err
		}
		g.mu.Lock()
		seed = g.seed
		fetchedAt = g.fetchedAt
		g.mu.Unlock()
	}

	if stale(fetchedAt, time.Now()) {
		return "", ErrSeedObsolete
	}

	return tokenFor(*seed, text), nil
}

// Obsolete reports whether the cached seed has aged out of its hour window.
// A generator with no seed yet is not obsolete; it simply has nothing to
// refresh.
func (g *Generator) Obsolete() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seed != nil && stale(g.fetchedAt, time.Now())
}

// Refresh re-scrapes the seed from the landing page and replaces the cache.
func (g *Generator) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.pageURL, nil)
	if err != nil {
		return fmt.Errorf("token: build seed request: %w", err)
	}
	if g.userAgent != "" {
		req.Header.Set("User-Agent", g.userAgent)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("token: fetch seed page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token: seed page returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("token: read seed page: %w", err)
	}

	seed, err := parseSeed(body)
	if err != nil {
		return err
	}

	g.mu.Lock()
	g.seed = &seed
	g.fetchedAt = time.Now()
	g.mu.Unlock()
	return nil
}

// parseSeed extracts the tkk pair from landing-page HTML.
func parseSeed(page []byte) (Seed, error) {
	m := seedPattern.FindSubmatch(page)
	if m == nil {
		return Seed{}, fmt.Errorf("token: seed not found in landing page")
	}
	first, err := strconv.ParseInt(string(m[1]), 10, 64)
	if err != nil {
		return Seed{}, fmt.Errorf("token: bad seed first part: %w", err)
	}
	second, err := strconv.ParseInt(string(m[2]), 10, 64)
	if err != nil {
		return Seed{}, fmt.Errorf("token: bad seed second part: %w", err)
	}
	return Seed{First: first, Second: second}, nil
}

// stale reports whether a seed fetched at fetchedAt has left the hour window
// it was scraped in. The seed's first component encodes the hour it was
// minted, so crossing an hour boundary invalidates it.
func stale(fetchedAt, now time.Time) bool {
	return !fetchedAt.Truncate(time.Hour).Equal(now.Truncate(time.Hour))
}
