package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func TestEnsureCookie_Handshake(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.SetCookie(w, &http.Cookie{Name: "NID", Value: "abc123"})
	}))
	defer server.Close()

	s := New(server.Client(), server.URL, "test-agent", nil)

	s.EnsureCookie(context.Background())
	if got := s.Cookie(); got != "NID=abc123" {
		t.Errorf("expected handshake cookie, got %q", got)
	}

	// Idempotent: a cached cookie skips the network call.
	s.EnsureCookie(context.Background())
	if hits != 1 {
		t.Errorf("expected 1 handshake, got %d", hits)
	}
}

func TestEnsureCookie_FailureSwallowed(t *testing.T) {
	s := New(http.DefaultClient, "http://127.0.0.1:1", "", nil)

	s.EnsureCookie(context.Background())
	if got := s.Cookie(); got != FallbackCookie {
		t.Errorf("expected fallback cookie after failed handshake, got %q", got)
	}
}

func TestCookie_FallbackWhenUnset(t *testing.T) {
	s := New(http.DefaultClient, "", "", nil)
	if s.Cookie() != FallbackCookie {
		t.Error("expected the documented fallback cookie")
	}
}

func TestUpdateFromResponse_LastWriteWins(t *testing.T) {
	s := New(http.DefaultClient, "", "", nil)

	first := &http.Response{Header: http.Header{}}
	first.Header.Add("Set-Cookie", "NID=first")
	s.UpdateFromResponse(first)
	if s.Cookie() != "NID=first" {
		t.Fatalf("expected NID=first, got %q", s.Cookie())
	}

	second := &http.Response{Header: http.Header{}}
	second.Header.Add("Set-Cookie", "NID=second")
	second.Header.Add("Set-Cookie", "SIDCC=extra")
	s.UpdateFromResponse(second)
	if s.Cookie() != "NID=second; SIDCC=extra" {
		t.Errorf("expected replacement, got %q", s.Cookie())
	}
}

func TestUpdateFromResponse_NoCookiesKeepsCache(t *testing.T) {
	s := New(http.DefaultClient, "", "", nil)

	resp := &http.Response{Header: http.Header{}}
	resp.Header.Add("Set-Cookie", "NID=kept")
	s.UpdateFromResponse(resp)

	s.UpdateFromResponse(&http.Response{Header: http.Header{}})
	if s.Cookie() != "NID=kept" {
		t.Errorf("a response without Set-Cookie must not clear the cache, got %q", s.Cookie())
	}
}

func TestUpdateFromResponse_Concurrent(t *testing.T) {
	s := New(http.DefaultClient, "", "", nil)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := &http.Response{Header: http.Header{}}
			resp.Header.Add("Set-Cookie", "NID=race")
			s.UpdateFromResponse(resp)
			_ = s.Cookie()
		}()
	}
	wg.Wait()

	if s.Cookie() != "NID=race" {
		t.Errorf("unexpected cookie after concurrent updates: %q", s.Cookie())
	}
}
