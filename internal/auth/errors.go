package auth

import "errors"

var (
	ErrStateMismatch = errors.New("oauth state mismatch")
	ErrMissingCode   = errors.New("authorization code is required")
	ErrExchange      = errors.New("failed to exchange authorization code")
	ErrUserInfo      = errors.New("failed to fetch user info")
)
