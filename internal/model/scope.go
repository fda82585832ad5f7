package model

import "golang.org/x/oauth2"

// Scope identifies the caller of a use case and the provider token acting for them.
type Scope struct {
	UserEmail string
	UserName  string
	Token     *oauth2.Token
}

// Authenticated reports whether the scope carries a usable access token.
func (sc Scope) Authenticated() bool {
	return sc.Token != nil && sc.Token.AccessToken != ""
}
