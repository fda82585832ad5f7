package googleauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// Client runs the authorization-code flow against Google and refreshes tokens.
type Client struct {
	config     *oauth2.Config
	httpClient *http.Client
	apiOpts    []option.ClientOption
}

// New creates a Client. Zero Scopes defaults to DefaultScopes.
func New(cfg Config) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, ErrMissingCredentials
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = DefaultScopes
	}

	endpoint := google.Endpoint
	if cfg.Endpoint != nil {
		endpoint = *cfg.Endpoint
	}

	return &Client{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint:     endpoint,
		},
		httpClient: cfg.HTTPClient,
		apiOpts:    cfg.APIOptions,
	}, nil
}

// AuthCodeURL returns the consent page URL. Offline access with a forced
// consent prompt makes Google hand out a refresh token on every sign in.
func (c *Client) AuthCodeURL(state string) string {
	return c.config.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange trades an authorization code for a token pair.
func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	if code == "" {
		return nil, ErrMissingCode
	}
	tok, err := c.config.Exchange(c.withHTTPClient(ctx), code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange auth code: %w", err)
	}
	return tok, nil
}

// Refresh obtains a new access token using the refresh token of tok.
// The refresh token is carried over when Google does not rotate it.
func (c *Client) Refresh(ctx context.Context, tok *oauth2.Token) (*oauth2.Token, error) {
	if tok == nil || tok.RefreshToken == "" {
		return nil, ErrNoRefreshToken
	}

	// Drop the access token so the token source always hits the token endpoint.
	expired := &oauth2.Token{RefreshToken: tok.RefreshToken}
	newTok, err := c.config.TokenSource(c.withHTTPClient(ctx), expired).Token()
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, fmt.Errorf("%w: %s", ErrRefreshRejected, retrieveErr.ErrorCode)
		}
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}
	if newTok.RefreshToken == "" {
		newTok.RefreshToken = tok.RefreshToken
	}
	return newTok, nil
}

// UserInfo fetches the profile of the token owner.
func (c *Client) UserInfo(ctx context.Context, tok *oauth2.Token) (UserInfo, error) {
	opts := append([]option.ClientOption{
		option.WithTokenSource(oauth2.StaticTokenSource(tok)),
	}, c.apiOpts...)

	svc, err := googleoauth2.NewService(ctx, opts...)
	if err != nil {
		return UserInfo{}, fmt.Errorf("failed to create oauth2 service: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return UserInfo{}, fmt.Errorf("failed to fetch user info: %w", err)
	}

	return UserInfo{
		Email: info.Email,
		Name:  info.Name,
	}, nil
}

func (c *Client) withHTTPClient(ctx context.Context) context.Context {
	if c.httpClient == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}
