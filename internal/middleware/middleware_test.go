package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-scheduler/internal/middleware"
	"meeting-scheduler/internal/session"
	"meeting-scheduler/pkg/log"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func init() {
	gin.SetMode(gin.TestMode)
}

func newSessions(t *testing.T) *session.Manager {
	t.Helper()
	m, err := session.NewManager(session.Config{SigningSecret: "0123456789abcdef0123456789abcdef", TTL: time.Hour})
	require.NoError(t, err)
	return m
}

func bearer(t *testing.T, m *session.Manager, email string) string {
	t.Helper()
	raw, err := m.Issue(session.Session{UserEmail: email, AccessToken: "at"})
	require.NoError(t, err)
	return "Bearer " + raw
}

func TestAuth(t *testing.T) {
	sessions := newSessions(t)
	mw := middleware.New(&mockLogger{}, sessions, middleware.Config{})

	r := gin.New()
	r.GET("/private", mw.Auth(), func(c *gin.Context) {
		s, ok := session.FromContext(c.Request.Context())
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, s.UserEmail)
	})

	t.Run("no session", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"Not authenticated"}`, w.Body.String())
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid bearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", bearer(t, sessions, "ada@example.com"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ada@example.com", w.Body.String())
	})
}

func TestRateLimit(t *testing.T) {
	sessions := newSessions(t)
	// 10/min gives a burst of one.
	mw := middleware.New(&mockLogger{}, sessions, middleware.Config{RateLimitPerMin: 10})

	r := gin.New()
	r.GET("/open", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/private", mw.Auth(), mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(path, auth string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "10.0.0.1:1234"
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do("/open", "").Code)
	w := do("/open", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"message":"Too many requests"}`, w.Body.String())

	// Signed-in users get their own bucket even from the same address.
	ada := bearer(t, sessions, "ada@example.com")
	bob := bearer(t, sessions, "bob@example.com")
	assert.Equal(t, http.StatusOK, do("/private", ada).Code)
	assert.Equal(t, http.StatusTooManyRequests, do("/private", ada).Code)
	assert.Equal(t, http.StatusOK, do("/private", bob).Code)
}

func TestRateLimitDisabled(t *testing.T) {
	mw := middleware.New(&mockLogger{}, newSessions(t), middleware.Config{})

	r := gin.New()
	r.GET("/open", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRequestLogger(t *testing.T) {
	mw := middleware.New(&mockLogger{}, newSessions(t), middleware.Config{})

	var seen string
	r := gin.New()
	r.Use(mw.RequestLogger())
	r.GET("/x", func(c *gin.Context) {
		seen, _ = c.Request.Context().Value(log.RequestIDKey{}).(string)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(middleware.HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-42")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", w.Header().Get(middleware.HeaderRequestID))
}
