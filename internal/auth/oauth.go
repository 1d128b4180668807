package auth

import (
	"fmt"

	"golang.org/x/oauth2"
)

const (
	// RunBeacon OAuth endpoints
	AuthURL  = "https://www.runbeacon.com/oauth/authorize"
	TokenURL = "https://www.runbeacon.com/oauth/token"
)

// Scopes required for our app (RunBeacon uses comma-separated scopes)
var Scopes = []string{
	"profile:read,profile:write,activity:read",
}

// Config holds the OAuth client credentials
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string // e.g., "http://localhost:8089/callback"
}

// NewOAuthConfig creates an oauth2.Config from our Config
func NewOAuthConfig(cfg Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  AuthURL,
			TokenURL: TokenURL,
		},
		RedirectURL: cfg.RedirectURL,
		Scopes:      Scopes,
	}
}

// AuthResult contains the token and user info from successful auth
type AuthResult struct {
	Token  *oauth2.Token
	UserID string
}

// ExtractUserID extracts the user ID from the token extras.
// RunBeacon includes the owning user in the token response.
func ExtractUserID(token *oauth2.Token) string {
	if user, ok := token.Extra("user").(map[string]interface{}); ok {
		switch id := user["id"].(type) {
		case string:
			return id
		case float64:
			return fmt.Sprintf("%.0f", id)
		}
	}
	if id, ok := token.Extra("user_id").(string); ok {
		return id
	}
	return ""
}
