package session

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// HeaderRefreshedToken carries a re-issued session token to bearer clients.
const HeaderRefreshedToken = "X-Session-Token"

// CookieConfig controls the session cookie.
type CookieConfig struct {
	Name   string
	Domain string
	Secure bool
}

// FromRequest reads the session from the cookie or, failing that, from an
// "Authorization: Bearer" header.
func (m *Manager) FromRequest(c *gin.Context) (Session, error) {
	return m.Parse(m.rawToken(c))
}

func (m *Manager) rawToken(c *gin.Context) string {
	if raw, err := c.Cookie(m.cookie.Name); err == nil && raw != "" {
		return raw
	}
	header := c.GetHeader("Authorization")
	if len(header) > len("Bearer ") && strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return ""
}

// WriteCookie issues a token for s and sets it as the session cookie. The
// token is also echoed in HeaderRefreshedToken.
func (m *Manager) WriteCookie(c *gin.Context, s Session) error {
	raw, err := m.Issue(s)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookie.Name, raw, int(m.ttl.Seconds()), "/", m.cookie.Domain, m.cookie.Secure, true)
	c.Header(HeaderRefreshedToken, raw)
	return nil
}

// ClearCookie expires the session cookie.
func (m *Manager) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookie.Name, "", -1, "/", m.cookie.Domain, m.cookie.Secure, true)
}

// CookieName is the name of the session cookie.
func (m *Manager) CookieName() string {
	return m.cookie.Name
}

// CookieSecure reports whether cookies are marked Secure.
func (m *Manager) CookieSecure() bool {
	return m.cookie.Secure
}
