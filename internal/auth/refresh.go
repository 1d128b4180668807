package auth

import (
	"context"
	"sync"

	"golang.org/x/oauth2"
)

// TokenSource keeps the stored RunBeacon token usable across sessions. It
// delegates refresh to the oauth2 package and writes each new token back
// through the persist callback, so a token refreshed mid-sync survives the
// next program start.
type TokenSource struct {
	mu      sync.Mutex
	inner   oauth2.TokenSource
	persist func(*oauth2.Token) error

	// access token last handed to persist; refreshes are detected by
	// comparing against it
	lastSaved string
}

// NewTokenSource wraps the stored token with automatic refresh and
// persistence. persist may be nil when the caller does not need tokens
// written back.
func NewTokenSource(cfg *oauth2.Config, token *oauth2.Token, persist func(*oauth2.Token) error) *TokenSource {
	return &TokenSource{
		inner:     cfg.TokenSource(context.Background(), token),
		persist:   persist,
		lastSaved: token.AccessToken,
	}
}

// Token returns a valid token, refreshing and persisting when the stored one
// has expired
func (ts *TokenSource) Token() (*oauth2.Token, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	tok, err := ts.inner.Token()
	if err != nil {
		return nil, err
	}

	if tok.AccessToken != ts.lastSaved {
		if ts.persist != nil {
			if err := ts.persist(tok); err != nil {
				return nil, err
			}
		}
		ts.lastSaved = tok.AccessToken
	}

	return tok, nil
}
