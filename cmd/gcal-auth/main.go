// Command gcal-auth authorizes the Google Calendar mirror for a personal
// account. It runs the OAuth consent flow once and writes a credentials file
// that google_calendar.credentials_path can point at.
//
// Usage:
//
//	go run ./cmd/gcal-auth [-client client_secret.json] [-out google-credentials.json]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"zenned/pkg/log"
)

// authorizedUser is the credentials shape google.CredentialsFromJSON accepts
// for a user account.
type authorizedUser struct {
	Type         string `json:"type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RefreshToken string `json:"refresh_token"`
}

func main() {
	clientPath := flag.String("client", "client_secret.json", "OAuth desktop-app client file")
	outPath := flag.String("out", "google-credentials.json", "where to write the credentials")
	flag.Parse()

	ctx := context.Background()
	logger := log.Init(log.ZapConfig{Level: "info", Mode: "development", Encoding: "console", ColorEnabled: true})

	if err := run(ctx, *clientPath, *outPath); err != nil {
		logger.Errorf(ctx, "gcal-auth: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Credentials written to %s. Set google_calendar.credentials_path and restart the API.", *outPath)
}

func run(ctx context.Context, clientPath, outPath string) error {
	data, err := os.ReadFile(clientPath)
	if err != nil {
		return fmt.Errorf("read %q: %w", clientPath, err)
	}

	cfg, err := google.ConfigFromJSON(data, calendar.CalendarEventsScope)
	if err != nil {
		return fmt.Errorf("%q is not an OAuth desktop-app client file: %w", clientPath, err)
	}

	fmt.Println("1. Open this URL and sign in with the calendar's Google account:")
	fmt.Println()
	fmt.Println(cfg.AuthCodeURL("zenned", oauth2.AccessTypeOffline, oauth2.ApprovalForce))
	fmt.Println()
	fmt.Println("   The browser then lands on the client's redirect URL; copy its code parameter.")
	fmt.Print("2. Paste the authorization code here: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return fmt.Errorf("read code: %w", err)
	}

	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange code: %w", err)
	}
	if tok.RefreshToken == "" {
		return errors.New("no refresh token returned; revoke the app's access and retry")
	}

	return writeCredentials(outPath, authorizedUser{
		Type:         "authorized_user",
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RefreshToken: tok.RefreshToken,
	})
}

func writeCredentials(path string, creds authorizedUser) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(creds)
}
