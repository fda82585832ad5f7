package gcalendar

import (
	"context"
	"errors"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
)

// ErrNoAccessToken is returned when a client is requested for an empty token.
var ErrNoAccessToken = errors.New("no access token")

// Factory builds one Client per user token.
type Factory struct {
	opts []option.ClientOption
}

// NewFactory returns a Factory; opts are appended to every client (endpoint overrides in tests).
func NewFactory(opts ...option.ClientOption) *Factory {
	return &Factory{opts: opts}
}

// ForToken returns a client that always presents tok as is. The token source is
// static so an expired token surfaces as a 401 instead of a silent refresh.
func (f *Factory) ForToken(ctx context.Context, tok *oauth2.Token) (*Client, error) {
	if tok == nil || tok.AccessToken == "" {
		return nil, ErrNoAccessToken
	}
	static := &oauth2.Token{
		AccessToken: tok.AccessToken,
		TokenType:   tok.Type(),
	}
	return NewClientFromTokenSource(ctx, oauth2.StaticTokenSource(static), f.opts...)
}
