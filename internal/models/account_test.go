package models

import (
	"testing"
	"time"
)

func TestAccount(t *testing.T) {
	t.Run("NewAccount stamps timestamps", func(t *testing.T) {
		account := NewAccount(1, "user-1")

		if account.SpotifyID() != "user-1" {
			t.Errorf("unexpected spotify id %q", account.SpotifyID())
		}
		if account.CreatedAt().IsZero() || account.UpdatedAt().IsZero() {
			t.Error("expected created and updated timestamps")
		}
		if account.DeletedAt() != nil {
			t.Error("expected no deletion timestamp")
		}
	})

	t.Run("SetTokens", func(t *testing.T) {
		t.Run("stores the token pair", func(t *testing.T) {
			account := NewAccount(1, "user-1")
			expiry := time.Now().Add(time.Hour)

			account.SetTokens("access", "refresh", &expiry)

			if account.AccessToken() != "access" || account.RefreshToken() != "refresh" {
				t.Error("expected tokens to be stored")
			}
			if account.TokenExpiresAt() == nil || !account.TokenExpiresAt().Equal(expiry) {
				t.Error("expected expiry to be stored")
			}
		})

		t.Run("keeps the previous refresh token when omitted", func(t *testing.T) {
			account := NewAccount(1, "user-1")
			account.SetTokens("access", "original-refresh", nil)

			account.SetTokens("rotated-access", "", nil)

			if account.AccessToken() != "rotated-access" {
				t.Errorf("unexpected access token %q", account.AccessToken())
			}
			if account.RefreshToken() != "original-refresh" {
				t.Errorf("expected refresh token preserved, got %q", account.RefreshToken())
			}
		})
	})

	t.Run("Validate", func(t *testing.T) {
		if err := NewAccount(1, "user-1").Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if err := NewAccount(1, "").Validate(); err == nil {
			t.Error("expected error for empty spotify id")
		}
	})
}
