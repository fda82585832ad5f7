package auth

import (
	"context"

	"golang.org/x/oauth2"

	"meeting-scheduler/pkg/googleauth"
)

//go:generate mockery --name UseCase
type UseCase interface {
	SignIn(ctx context.Context) (SignInOutput, error)
	Callback(ctx context.Context, input CallbackInput) (CallbackOutput, error)
}

// Provider is the OAuth2 identity provider.
type Provider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	UserInfo(ctx context.Context, tok *oauth2.Token) (googleauth.UserInfo, error)
}
