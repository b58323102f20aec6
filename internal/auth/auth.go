// Package auth owns Spotify OAuth2 token acquisition and refresh.
//
// The spotify package never performs token exchange; it consumes the
// access token string produced here.
package auth

import (
	"context"
	"fmt"

	"github.com/lunamoth/spx/internal/shared"
	"golang.org/x/oauth2"
)

const (
	authURL  = "https://accounts.spotify.com/authorize"
	tokenURL = "https://accounts.spotify.com/api/token"
)

// Scopes requested during authorization: playback control, library and
// playlist reads, and profile access.
var scopes = []string{
	"user-read-private",
	"user-read-email",
	"user-read-playback-state",
	"user-modify-playback-state",
	"user-read-recently-played",
	"user-top-read",
	"user-library-read",
	"playlist-read-private",
	"playlist-read-collaborative",
}

// Authenticator wraps an [oauth2.Config] for the authorization code flow.
type Authenticator struct {
	config *oauth2.Config
}

// New creates an Authenticator from credential fields.
//
// Expects "client_id" and "client_secret"; "redirect_uri" defaults to the
// local callback server address.
func New(credentials map[string]string) (*Authenticator, error) {
	clientID := credentials["client_id"]
	if clientID == "" {
		return nil, fmt.Errorf("%w: client_id", shared.ErrMissingCredentials)
	}

	clientSecret := credentials["client_secret"]
	if clientSecret == "" {
		return nil, fmt.Errorf("%w: client_secret", shared.ErrMissingCredentials)
	}

	redirectURI := credentials["redirect_uri"]
	if redirectURI == "" {
		redirectURI = "http://localhost:8080/callback"
	}

	return &Authenticator{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Scopes:       scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  authURL,
				TokenURL: tokenURL,
			},
		},
	}, nil
}

// AuthURL returns the authorization URL for user login.
func (a *Authenticator) AuthURL(state string) string {
	return a.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange converts an authorization code into a token pair.
func (a *Authenticator) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := a.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange auth code: %w", err)
	}
	return token, nil
}

// Refresh obtains a fresh token pair from a token carrying a refresh token.
func (a *Authenticator) Refresh(ctx context.Context, token *oauth2.Token) (*oauth2.Token, error) {
	if token == nil || token.RefreshToken == "" {
		return nil, fmt.Errorf("%w: no refresh token", shared.ErrNotAuthenticated)
	}

	fresh, err := a.config.TokenSource(ctx, token).Token()
	if err != nil {
		return nil, fmt.Errorf("token refresh failed: %w", err)
	}
	return fresh, nil
}

// Config exposes the underlying [oauth2.Config] for the callback server.
func (a *Authenticator) Config() *oauth2.Config {
	return a.config
}
