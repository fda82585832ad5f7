package session

import "time"

// SetNow overrides the clock used for issuing and verifying tokens.
func (m *Manager) SetNow(now func() time.Time) {
	m.now = now
}
