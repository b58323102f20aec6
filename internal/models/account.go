package models

import (
	"fmt"
	"time"
)

// Account is the persisted record for one authorized Spotify user: the
// unique Spotify ID plus the token pair issued for it. The request layer
// never touches this type; it is the credential store's schema.
type Account struct {
	id             string
	sequence       int
	spotifyID      string
	displayName    string
	avatar         string
	accessToken    string
	refreshToken   string
	tokenExpiresAt *time.Time
	createdAt      time.Time
	updatedAt      time.Time
	deletedAt      *time.Time
}

// NewAccount creates an Account for the given Spotify user ID.
func NewAccount(sequence int, spotifyID string) *Account {
	now := time.Now()
	return &Account{
		sequence:  sequence,
		spotifyID: spotifyID,
		createdAt: now,
		updatedAt: now,
	}
}

func (a *Account) ID() string { return a.id }

func (a *Account) Sequence() int { return a.sequence }

func (a *Account) SpotifyID() string { return a.spotifyID }

func (a *Account) DisplayName() string { return a.displayName }

func (a *Account) Avatar() string { return a.avatar }

func (a *Account) AccessToken() string { return a.accessToken }

func (a *Account) RefreshToken() string { return a.refreshToken }

func (a *Account) CreatedAt() time.Time { return a.createdAt }

func (a *Account) UpdatedAt() time.Time { return a.updatedAt }

func (a *Account) DeletedAt() *time.Time { return a.deletedAt }

// TokenExpiresAt returns when the stored access token expires, or nil if
// unknown.
func (a *Account) TokenExpiresAt() *time.Time { return a.tokenExpiresAt }

func (a *Account) SetID(id string) { a.id = id }

func (a *Account) SetDisplayName(name string) { a.displayName = name }

func (a *Account) SetAvatar(url string) { a.avatar = url }

func (a *Account) SetUpdatedAt(t time.Time) { a.updatedAt = t }

func (a *Account) SetDeletedAt(t *time.Time) { a.deletedAt = t }

func (a *Account) SetSequence(sequence int) { a.sequence = sequence }

// SetTokens stores a newly issued token pair. An empty refresh token
// keeps the previous one, matching the OAuth refresh behavior.
func (a *Account) SetTokens(access, refresh string, expiresAt *time.Time) {
	a.accessToken = access
	if refresh != "" {
		a.refreshToken = refresh
	}
	a.tokenExpiresAt = expiresAt
}

// Validate checks the account's required fields.
func (a *Account) Validate() error {
	if a.spotifyID == "" {
		return fmt.Errorf("account requires a spotify_id")
	}
	return nil
}
