package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/oauth2"

	tea "github.com/charmbracelet/bubbletea"

	"zonecoach/internal/analysis"
	"zonecoach/internal/auth"
	"zonecoach/internal/config"
	"zonecoach/internal/profileapi"
	"zonecoach/internal/service"
	"zonecoach/internal/store"
	"zonecoach/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Println("No config file found. Creating example config...")
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Printf("\nPlease edit the config file at:\n  %s/config.json\n\n", configDir)
		fmt.Println("You need to add your RunBeacon API credentials.")
		fmt.Println("Get them from: https://www.runbeacon.com/settings/api")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	// Open database
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	// Check for existing auth
	storedAuth, err := db.GetAuth()
	if errors.Is(err, store.ErrNoAuth) {
		// No auth stored, need to authenticate
		fmt.Println("No authentication found. Starting OAuth flow...")
		if err := authenticate(ctx, db, cfg); err != nil {
			return fmt.Errorf("authentication: %w", err)
		}
		// Re-fetch auth after successful authentication
		storedAuth, err = db.GetAuth()
		if err != nil {
			return fmt.Errorf("fetching auth after login: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("checking auth: %w", err)
	}

	// Create token source for API calls (with auto-refresh)
	oauthCfg := auth.NewOAuthConfig(auth.Config{
		ClientID:     cfg.Platform.ClientID,
		ClientSecret: cfg.Platform.ClientSecret,
		RedirectURL:  fmt.Sprintf("http://localhost:%d/callback", auth.CallbackPort),
	})

	token := &oauth2.Token{
		AccessToken:  storedAuth.AccessToken,
		RefreshToken: storedAuth.RefreshToken,
		Expiry:       storedAuth.ExpiresAt,
	}

	tokenSource := auth.NewTokenSource(oauthCfg, token, func(newToken *oauth2.Token) error {
		return db.UpdateTokens(newToken.AccessToken, newToken.RefreshToken, newToken.Expiry)
	})

	// Test token is valid by getting a fresh one
	if _, err := tokenSource.Token(); err != nil {
		fmt.Println("Stored token is invalid or expired. Re-authenticating...")
		if err := authenticate(ctx, db, cfg); err != nil {
			return fmt.Errorf("re-authentication: %w", err)
		}
	}

	// Create services
	client := profileapi.NewClient(tokenSource)
	profileSvc := service.NewProfileService(db, client, storedAuth.UserID)
	syncSvc := service.NewSyncService(client, db, profileSvc, cfg.Sync)
	querySvc := service.NewQueryService(db, storedAuth.UserID)

	// Seed the profile from config on first run so configured heart rate
	// limits take precedence over estimates
	if err := seedProfile(ctx, db, profileSvc, storedAuth.UserID, cfg); err != nil {
		return fmt.Errorf("seeding profile from config: %w", err)
	}

	// Launch TUI
	app := tui.NewApp(db, profileSvc, syncSvc, querySvc, tui.NewUnits(cfg.Display))
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// seedProfile creates an initial profile from the config's athlete section
// when no profile has been saved yet
func seedProfile(ctx context.Context, db *store.DB, profiles *service.ProfileService, userID string, cfg *config.Config) error {
	if cfg.Athlete.MaxHR <= 0 && cfg.Athlete.RestingHR <= 0 {
		return nil
	}

	if _, err := db.GetProfile(userID); !errors.Is(err, store.ErrNoProfile) {
		return err
	}

	var patch analysis.ProfilePatch
	if cfg.Athlete.MaxHR > 0 {
		maxHR := cfg.Athlete.MaxHR
		patch.MaxHeartRate = &maxHR
	}
	if cfg.Athlete.RestingHR > 0 {
		restingHR := cfg.Athlete.RestingHR
		patch.RestingHeartRate = &restingHR
	}

	result, err := profiles.Update(ctx, patch)
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("config athlete values failed validation: %v", result.Profile.ValidationErrors)
	}
	return nil
}

func authenticate(ctx context.Context, db *store.DB, cfg *config.Config) error {
	oauthCfg := auth.NewOAuthConfig(auth.Config{
		ClientID:     cfg.Platform.ClientID,
		ClientSecret: cfg.Platform.ClientSecret,
		RedirectURL:  fmt.Sprintf("http://localhost:%d/callback", auth.CallbackPort),
	})

	result, err := auth.Authenticate(ctx, oauthCfg)
	if err != nil {
		return err
	}

	// Store the tokens
	storedAuth := &store.Auth{
		UserID:       result.UserID,
		AccessToken:  result.Token.AccessToken,
		RefreshToken: result.Token.RefreshToken,
		ExpiresAt:    result.Token.Expiry,
	}

	if err := db.SaveAuth(storedAuth); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}

	fmt.Println()
	fmt.Printf("Successfully authenticated as %s!\n", result.UserID)
	return nil
}
