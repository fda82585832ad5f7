package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"meeting-scheduler/internal/model"
)

// Session is what the signed session token carries. The provider tokens live
// only here; nothing is stored server side.
type Session struct {
	UserEmail    string
	UserName     string
	AccessToken  string
	RefreshToken string
	TokenType    string
	// TokenExpiry is the provider access-token expiry, not the session expiry.
	TokenExpiry time.Time
	// ExpiresAt is the session expiry, filled in by Parse.
	ExpiresAt time.Time
}

// Token returns the provider token pair.
func (s Session) Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		TokenType:    s.TokenType,
		Expiry:       s.TokenExpiry,
	}
}

// Scope returns the use-case scope acting for this session.
func (s Session) Scope() model.Scope {
	return model.Scope{
		UserEmail: s.UserEmail,
		UserName:  s.UserName,
		Token:     s.Token(),
	}
}

// WithToken returns a copy of s holding tok.
func (s Session) WithToken(tok *oauth2.Token) Session {
	s.AccessToken = tok.AccessToken
	s.TokenType = tok.TokenType
	s.TokenExpiry = tok.Expiry
	if tok.RefreshToken != "" {
		s.RefreshToken = tok.RefreshToken
	}
	return s
}

type claims struct {
	jwt.RegisteredClaims
	Name         string `json:"name,omitempty"`
	AccessToken  string `json:"at"`
	RefreshToken string `json:"rt,omitempty"`
	TokenType    string `json:"tt,omitempty"`
	TokenExpiry  int64  `json:"texp,omitempty"`
}

// Manager signs and verifies session tokens with HMAC-SHA256.
type Manager struct {
	secret []byte
	ttl    time.Duration
	issuer string
	cookie CookieConfig
	now    func() time.Time
}

// NewManager returns a Manager. The secret must be at least MinSecretLength bytes.
func NewManager(cfg Config) (*Manager, error) {
	if len(cfg.SigningSecret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	issuer := cfg.Issuer
	if issuer == "" {
		issuer = DefaultIssuer
	}
	cookie := cfg.Cookie
	if cookie.Name == "" {
		cookie.Name = DefaultCookieName
	}
	return &Manager{
		secret: []byte(cfg.SigningSecret),
		ttl:    ttl,
		issuer: issuer,
		cookie: cookie,
		now:    time.Now,
	}, nil
}

// TTL is how long an issued session stays valid.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue signs s into a session token.
func (m *Manager) Issue(s Session) (string, error) {
	if s.AccessToken == "" {
		return "", ErrNoAccessToken
	}
	now := m.now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   s.UserEmail,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Name:         s.UserName,
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		TokenType:    s.TokenType,
	}
	if !s.TokenExpiry.IsZero() {
		c.TokenExpiry = s.TokenExpiry.Unix()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, nil
}

// Parse verifies raw and returns the session it carries.
func (m *Manager) Parse(raw string) (Session, error) {
	if raw == "" {
		return Session{}, ErrMissing
	}

	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Session{}, ErrExpired
		}
		return Session{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.AccessToken == "" {
		return Session{}, ErrNoAccessToken
	}

	s := Session{
		UserEmail:    c.Subject,
		UserName:     c.Name,
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		TokenType:    c.TokenType,
	}
	if c.TokenExpiry != 0 {
		s.TokenExpiry = time.Unix(c.TokenExpiry, 0)
	}
	if c.ExpiresAt != nil {
		s.ExpiresAt = c.ExpiresAt.Time
	}
	return s, nil
}

type ctxKey struct{}

// SetToContext stores s in ctx.
func SetToContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored by SetToContext.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}
