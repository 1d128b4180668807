package auth

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func newTokenServer(t *testing.T, hits *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"refreshed-%d","refresh_token":"rt2","token_type":"Bearer","expires_in":3600}`, *hits)
	}))
}

func testConfig(tokenURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     "client",
		ClientSecret: "secret",
		Endpoint:     oauth2.Endpoint{TokenURL: tokenURL},
	}
}

func TestTokenSourceRefreshPersists(t *testing.T) {
	hits := 0
	srv := newTokenServer(t, &hits)
	defer srv.Close()

	expired := &oauth2.Token{
		AccessToken:  "old",
		RefreshToken: "rt1",
		Expiry:       time.Now().Add(-time.Hour),
	}

	var saved *oauth2.Token
	ts := NewTokenSource(testConfig(srv.URL), expired, func(tok *oauth2.Token) error {
		saved = tok
		return nil
	})

	tok, err := ts.Token()
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if tok.AccessToken != "refreshed-1" {
		t.Errorf("AccessToken = %q, want %q", tok.AccessToken, "refreshed-1")
	}
	if saved == nil || saved.AccessToken != "refreshed-1" {
		t.Errorf("persisted token = %+v, want refreshed token", saved)
	}

	// A second call inside the new token's lifetime must not hit the
	// endpoint or persist again
	saved = nil
	if _, err := ts.Token(); err != nil {
		t.Fatalf("Token() second call error = %v", err)
	}
	if hits != 1 {
		t.Errorf("token endpoint hits = %d, want 1", hits)
	}
	if saved != nil {
		t.Errorf("persist called again for unchanged token: %+v", saved)
	}
}

func TestTokenSourceValidTokenSkipsPersist(t *testing.T) {
	hits := 0
	srv := newTokenServer(t, &hits)
	defer srv.Close()

	valid := &oauth2.Token{
		AccessToken:  "current",
		RefreshToken: "rt1",
		Expiry:       time.Now().Add(time.Hour),
	}

	persisted := false
	ts := NewTokenSource(testConfig(srv.URL), valid, func(tok *oauth2.Token) error {
		persisted = true
		return nil
	})

	tok, err := ts.Token()
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if tok.AccessToken != "current" {
		t.Errorf("AccessToken = %q, want %q", tok.AccessToken, "current")
	}
	if hits != 0 {
		t.Errorf("token endpoint hits = %d, want 0", hits)
	}
	if persisted {
		t.Error("persist called for a still-valid token")
	}
}

func TestTokenSourcePersistErrorSurfaces(t *testing.T) {
	hits := 0
	srv := newTokenServer(t, &hits)
	defer srv.Close()

	expired := &oauth2.Token{
		AccessToken:  "old",
		RefreshToken: "rt1",
		Expiry:       time.Now().Add(-time.Hour),
	}

	wantErr := fmt.Errorf("disk full")
	ts := NewTokenSource(testConfig(srv.URL), expired, func(tok *oauth2.Token) error {
		return wantErr
	})

	if _, err := ts.Token(); err == nil {
		t.Fatal("Token() error = nil, want persist error")
	}
}
