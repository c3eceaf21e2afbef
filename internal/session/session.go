// Package session maintains the cookie the translation endpoint hands out on
// its landing page. Requests carrying no recognizable session cookie get
// rate-limited almost immediately, so the client performs a one-time
// unauthenticated handshake and then keeps whatever cookie the service last
// issued.
package session

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// FallbackCookie is sent when no handshake cookie is available. The service
// accepts it long enough for the first responses to issue a real one.
const FallbackCookie = "NID=511=dummy-consent; CONSENT=YES+"

// Session caches the service-issued cookie for the lifetime of a client
// instance. Reads and writes may race across concurrent translations;
// last write wins and redundant handshakes are tolerated.
type Session struct {
	client    *http.Client
	pageURL   string
	userAgent string
	log       *zap.Logger

	mu     sync.RWMutex
	cookie string
}

// New creates a Session that handshakes against pageURL.
func New(client *http.Client, pageURL, userAgent string, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		client:    client,
		pageURL:   pageURL,
		userAgent: userAgent,
		log:       log,
	}
}

// EnsureCookie performs the handshake if no cookie is cached yet. Transport
// failures are swallowed: translation can still proceed on the fallback
// cookie, so a dead landing page must not fail the operation.
func (s *Session) EnsureCookie(ctx context.Context) {
	s.mu.RLock()
	have := s.cookie != ""
	s.mu.RUnlock()
	if have {
		return
	}

	cookie, err := s.handshake(ctx)
	if err != nil {
		s.log.Warn("session handshake failed, proceeding with fallback cookie", zap.Error(err))
		return
	}
	if cookie == "" {
		return
	}

	s.mu.Lock()
	s.cookie = cookie
	s.mu.Unlock()
}

// Cookie returns the cached cookie, or FallbackCookie when none is cached.
func (s *Session) Cookie() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cookie == "" {
		return FallbackCookie
	}
	return s.cookie
}

// UpdateFromResponse replaces the cached cookie when resp carries Set-Cookie
// headers. Last write wins; no merging with the previous value.
func (s *Session) UpdateFromResponse(resp *http.Response) {
	cookies := resp.Cookies()
	if len(cookies) == 0 {
		return
	}
	parts := make([]string, 0, len(cookies))
	for _, c := range cookies {
		parts = append(parts, c.Name+"="+c.Value)
	}
	s.mu.Lock()
	s.cookie = strings.Join(parts, "; ")
	s.mu.Unlock()
}

func (s *Session) handshake(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("session: build handshake request: %w", err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("session: handshake request: %w", err)
	}
	defer resp.Body.Close()

	cookies := resp.Cookies()
	parts := make([]string, 0, len(cookies))
	for _, c := range cookies {
		parts = append(parts, c.Name+"="+c.Value)
	}
	return strings.Join(parts, "; "), nil
}
