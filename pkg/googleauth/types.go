package googleauth

import (
	"errors"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
)

// DefaultScopes grants sign in plus full calendar access.
var DefaultScopes = []string{
	"openid",
	"email",
	"profile",
	"https://www.googleapis.com/auth/calendar",
}

var (
	ErrMissingCredentials = errors.New("google client id and secret are required")
	ErrMissingCode        = errors.New("authorization code is required")
	ErrNoRefreshToken     = errors.New("no refresh token available")
	ErrRefreshRejected    = errors.New("refresh token rejected")
)

// Config holds the OAuth client registration.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string

	// Endpoint overrides google.Endpoint (tests).
	Endpoint *oauth2.Endpoint
	// HTTPClient is used for token endpoint calls when set.
	HTTPClient *http.Client
	// APIOptions are passed to the userinfo API client.
	APIOptions []option.ClientOption
}

// UserInfo is the signed in user's profile.
type UserInfo struct {
	Email string
	Name  string
}
