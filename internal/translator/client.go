// Package translator implements the client for the free translation web
// endpoint: request signing, session cookies, the positional response
// decoder, and the retry/ban policy around them.
package translator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BramscoChill/GoogleTranslateFreeApi/internal/language"
	"github.com/BramscoChill/GoogleTranslateFreeApi/internal/session"
	"github.com/BramscoChill/GoogleTranslateFreeApi/internal/token"
)

const (
	// DefaultDomain is the endpoint host used when the config names none.
	DefaultDomain = "translate.google.com"

	defaultTimeout = 10 * time.Second

	// The endpoint serves browsers; anything else gets blocked quickly.
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/115.0"
	acceptLanguage = "en-US,en;q=0.5"
)

// Client performs translations against a single endpoint domain. Safe for
// concurrent use: the cookie and signing seed caches tolerate racing
// refreshes with last-write-wins semantics.
type Client struct {
	domain     string
	baseURL    string
	httpClient *http.Client
	tokens     *token.Generator
	session    *session.Session
	log        *zap.Logger

	// sleep is the pre-request courtesy delay; replaced in tests.
	sleep func(ctx context.Context) error
}

// New builds a Client from cfg. An empty domain falls back to DefaultDomain;
// cfg.Proxy, when set, must be a valid proxy URL.
func New(cfg Config, log *zap.Logger) (*Client, error) {
	if log == nil {
		log = zap.NewNop()
	}

	domain := cfg.Domain
	if domain == "" {
		domain = DefaultDomain
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, fmt.Errorf("translator: bad proxy url: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}
	httpClient := &http.Client{Timeout: timeout, Transport: transport}

	baseURL := "https://" + domain
	pageURL := baseURL + "/"

	return &Client{
		domain:     domain,
		baseURL:    baseURL,
		httpClient: httpClient,
		tokens:     token.NewGenerator(httpClient, pageURL, userAgent),
		session:    session.New(httpClient, pageURL, userAgent, log),
		log:        log,
		sleep:      courtesyDelay,
	}, nil
}

// Translate translates text from one language to another, decoding the full
// response: extra translations, synonyms, definitions, and see-also terms.
func (c *Client) Translate(ctx context.Context, text string, from, to language.Language) (*Result, error) {
	return c.translate(ctx, text, from, to, true)
}

// TranslateLite requests only the main translation, transcription, and
// correction data, for lower latency and payload size.
func (c *Client) TranslateLite(ctx context.Context, text string, from, to language.Language) (*Result, error) {
	return c.translate(ctx, text, from, to, false)
}

func (c *Client) translate(ctx context.Context, text string, from, to language.Language, full bool) (*Result, error) {
	if err := validatePair(from, to); err != nil {
		return nil, err
	}

	// Whitespace-only input short-circuits before any network activity.
	if strings.TrimSpace(text) == "" {
		return &Result{OriginalText: text, SourceLanguage: from, TargetLanguage: to}, nil
	}

	res, err := c.attempt(ctx, text, from, to, full)
	if err == nil {
		return res, nil
	}
	if !c.seedRetryable(err) {
		return nil, err
	}

	// A stale signing seed gets exactly one end-to-end retry with a freshly
	// scraped seed. Whatever the second attempt returns propagates.
	c.log.Debug("signing seed obsolete, retrying with a fresh seed", zap.Error(err))
	if err := c.tokens.Refresh(ctx); err != nil {
		return nil, err
	}
	return c.attempt(ctx, text, from, to, full)
}

// seedRetryable reports whether err warrants the single stale-seed retry:
// either the generator refused outright, or the transport failed while the
// generator's seed had aged out.
func (c *Client) seedRetryable(err error) bool {
	if errors.Is(err, token.ErrSeedObsolete) {
		return true
	}
	var te *TransportError
	return errors.As(err, &te) && c.tokens.Obsolete()
}

func (c *Client) attempt(ctx context.Context, text string, from, to language.Language, full bool) (*Result, error) {
	c.session.EnsureCookie(ctx)

	tok, err := c.tokens.Generate(ctx, text)
	if err != nil {
		return nil, err
	}

	reqURL := buildURL(c.baseURL, text, from, to, tok, full)

	if err := c.sleep(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("translator: build request: %w", err)
	}
	req.Host = c.domain
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", acceptLanguage)
	req.Header.Set("Cookie", c.session.Cookie())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	c.session.UpdateFromResponse(resp)

	// The service answers automation it dislikes with a failure status;
	// that is the IP-ban signal, distinct from not answering at all.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w (status %d)", ErrIPBanned, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	return decode(body, text, from, to, full, c.log)
}

// courtesyDelay waits 200–500 ms before the main request as a rate-limiting
// courtesy. rand/v2's global source is safe for concurrent in-flight calls.
func courtesyDelay(ctx context.Context) error {
	d := time.Duration(200+rand.IntN(301)) * time.Millisecond
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
