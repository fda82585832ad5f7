package session

import (
	"errors"
	"time"
)

const (
	MinSecretLength = 32
	DefaultTTL      = 30 * 24 * time.Hour
	DefaultIssuer   = "meeting-scheduler"

	DefaultCookieName = "meeting_session"
)

var (
	ErrMissing       = errors.New("session token missing")
	ErrInvalid       = errors.New("session token invalid")
	ErrExpired       = errors.New("session token expired")
	ErrNoAccessToken = errors.New("session has no access token")
	ErrWeakSecret    = errors.New("session signing secret must be at least 32 bytes")
)

// Config configures a Manager.
type Config struct {
	SigningSecret string
	TTL           time.Duration
	Issuer        string
	Cookie        CookieConfig
}
