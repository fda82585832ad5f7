// scripts/session-token/main.go
//
// Signs in with Google from the terminal and prints a session token that can
// be sent as "Authorization: Bearer <token>" to the API, e.g. with curl.
//
// Usage:
//   go run ./scripts/session-token
//
// Uses the same config.yaml / environment as the server. Open the printed URL,
// approve access, then paste the "code" query parameter from the URL Google
// redirects to (the server does not need to be running).

package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"meeting-scheduler/config"
	"meeting-scheduler/internal/auth"
	authUC "meeting-scheduler/internal/auth/usecase"
	"meeting-scheduler/internal/session"
	"meeting-scheduler/pkg/googleauth"
	pkgLog "meeting-scheduler/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	provider, err := googleauth.New(googleauth.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
	})
	if err != nil {
		log.Fatalf("Failed to create Google OAuth client: %v", err)
	}

	sessions, err := session.NewManager(session.Config{
		SigningSecret: cfg.Session.SigningSecret,
		TTL:           cfg.Session.TTL,
	})
	if err != nil {
		log.Fatalf("Failed to create session manager: %v", err)
	}

	ctx := context.Background()
	uc := authUC.New(pkgLog.NewNop(), provider)

	signIn, err := uc.SignIn(ctx)
	if err != nil {
		log.Fatalf("Failed to start sign-in: %v", err)
	}

	fmt.Println("=================================================================")
	fmt.Println("Step 1: open this URL and sign in with your Google account:")
	fmt.Println()
	fmt.Println(signIn.URL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("Step 2: paste the code (or the whole redirect URL) and press Enter: ")

	var input string
	if _, err := fmt.Scan(&input); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	out, err := uc.Callback(ctx, auth.CallbackInput{
		Code:          codeFromInput(input),
		State:         signIn.State,
		ExpectedState: signIn.State,
	})
	if err != nil {
		log.Fatalf("Sign-in failed: %v", err)
	}

	token, err := sessions.Issue(out.Session)
	if err != nil {
		log.Fatalf("Failed to sign session token: %v", err)
	}

	fmt.Println()
	fmt.Printf("Signed in as %s. Session token (valid %s):\n\n%s\n\n", out.Session.UserEmail, sessions.TTL(), token)
	fmt.Println("Try it:")
	fmt.Printf("  curl -X POST %s/api/create-meeting \\\n", cfg.App.BaseURL)
	fmt.Println(`    -H "Authorization: Bearer $TOKEN" -H "Content-Type: application/json" \`)
	fmt.Println(`    -d '{"title":"Standup","isInstant":true}'`)
}

// codeFromInput accepts either a bare code or the full redirect URL.
func codeFromInput(input string) string {
	input = strings.TrimSpace(input)
	if u, err := url.Parse(input); err == nil && u.Query().Get("code") != "" {
		return u.Query().Get("code")
	}
	return input
}
