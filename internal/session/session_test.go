package session_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"meeting-scheduler/internal/session"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newManager(t *testing.T) *session.Manager {
	t.Helper()
	m, err := session.NewManager(session.Config{SigningSecret: testSecret, TTL: time.Hour})
	require.NoError(t, err)
	return m
}

func TestNewManager(t *testing.T) {
	_, err := session.NewManager(session.Config{SigningSecret: "short"})
	assert.ErrorIs(t, err, session.ErrWeakSecret)

	m, err := session.NewManager(session.Config{SigningSecret: testSecret})
	require.NoError(t, err)
	assert.Equal(t, session.DefaultTTL, m.TTL())
}

func TestIssueAndParse(t *testing.T) {
	m := newManager(t)
	expiry := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	raw, err := m.Issue(session.Session{
		UserEmail:    "ada@example.com",
		UserName:     "Ada",
		AccessToken:  "at-1",
		RefreshToken: "rt-1",
		TokenType:    "Bearer",
		TokenExpiry:  expiry,
	})
	require.NoError(t, err)

	s, err := m.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", s.UserEmail)
	assert.Equal(t, "Ada", s.UserName)
	assert.Equal(t, "at-1", s.AccessToken)
	assert.Equal(t, "rt-1", s.RefreshToken)
	assert.True(t, s.TokenExpiry.Equal(expiry))
	assert.False(t, s.ExpiresAt.IsZero())

	tok := s.Token()
	assert.Equal(t, "at-1", tok.AccessToken)
	assert.Equal(t, "rt-1", tok.RefreshToken)
}

func TestParseRejects(t *testing.T) {
	m := newManager(t)

	t.Run("missing", func(t *testing.T) {
		_, err := m.Parse("")
		assert.ErrorIs(t, err, session.ErrMissing)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		assert.ErrorIs(t, err, session.ErrInvalid)
	})

	t.Run("other secret", func(t *testing.T) {
		other, err := session.NewManager(session.Config{SigningSecret: strings.Repeat("x", 32)})
		require.NoError(t, err)
		raw, err := other.Issue(session.Session{AccessToken: "at"})
		require.NoError(t, err)

		_, err = m.Parse(raw)
		assert.ErrorIs(t, err, session.ErrInvalid)
	})

	t.Run("tampered", func(t *testing.T) {
		raw, err := m.Issue(session.Session{AccessToken: "at"})
		require.NoError(t, err)
		parts := strings.Split(raw, ".")
		parts[1] = parts[1] + "x"

		_, err = m.Parse(strings.Join(parts, "."))
		assert.ErrorIs(t, err, session.ErrInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		raw, err := m.Issue(session.Session{AccessToken: "at"})
		require.NoError(t, err)

		m.SetNow(func() time.Time { return time.Now().Add(2 * time.Hour) })
		defer m.SetNow(time.Now)

		_, err = m.Parse(raw)
		assert.ErrorIs(t, err, session.ErrExpired)
	})

	t.Run("issue without access token", func(t *testing.T) {
		_, err := m.Issue(session.Session{UserEmail: "ada@example.com"})
		assert.ErrorIs(t, err, session.ErrNoAccessToken)
	})
}

func TestWithToken(t *testing.T) {
	s := session.Session{UserEmail: "ada@example.com", AccessToken: "old", RefreshToken: "rt"}

	updated := s.WithToken(&oauth2.Token{AccessToken: "new", TokenType: "Bearer"})
	assert.Equal(t, "new", updated.AccessToken)
	assert.Equal(t, "rt", updated.RefreshToken, "refresh token kept when not rotated")
	assert.Equal(t, "old", s.AccessToken, "receiver untouched")

	rotated := s.WithToken(&oauth2.Token{AccessToken: "new", RefreshToken: "rt-2"})
	assert.Equal(t, "rt-2", rotated.RefreshToken)
}

func TestContext(t *testing.T) {
	_, ok := session.FromContext(context.Background())
	assert.False(t, ok)

	ctx := session.SetToContext(context.Background(), session.Session{UserEmail: "ada@example.com"})
	s, ok := session.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", s.UserEmail)
}
