package repositories

import (
	"database/sql"
	"testing"
	"time"

	"github.com/lunamoth/spx/internal/models"
	"github.com/lunamoth/spx/internal/shared"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func TestAccountRepository(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		t.Run("assigns an id and sequence", func(t *testing.T) {
			repo := NewAccountRepository(newTestDB(t))

			account := models.NewAccount(0, "user-1")
			if err := repo.Create(account); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if account.ID() == "" {
				t.Error("expected a generated id")
			}
			if account.Sequence() != 1 {
				t.Errorf("expected sequence 1, got %d", account.Sequence())
			}
		})

		t.Run("increments the sequence per account", func(t *testing.T) {
			repo := NewAccountRepository(newTestDB(t))

			first := models.NewAccount(0, "user-1")
			second := models.NewAccount(0, "user-2")

			if err := repo.Create(first); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if err := repo.Create(second); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if first.Sequence() != 1 || second.Sequence() != 2 {
				t.Errorf("unexpected sequences %d, %d", first.Sequence(), second.Sequence())
			}
		})

		t.Run("rejects accounts without a spotify id", func(t *testing.T) {
			repo := NewAccountRepository(newTestDB(t))

			if err := repo.Create(models.NewAccount(0, "")); err == nil {
				t.Error("expected validation error")
			}
		})
	})

	t.Run("Get", func(t *testing.T) {
		t.Run("retrieves a stored account", func(t *testing.T) {
			repo := NewAccountRepository(newTestDB(t))

			account := models.NewAccount(0, "user-1")
			account.SetDisplayName("Luna")
			if err := repo.Create(account); err != nil {
				t.Fatalf("failed to create account: %v", err)
			}

			found, err := repo.Get(account.ID())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if found.SpotifyID() != "user-1" {
				t.Errorf("unexpected spotify id %q", found.SpotifyID())
			}
			if found.DisplayName() != "Luna" {
				t.Errorf("unexpected display name %q", found.DisplayName())
			}
		})

		t.Run("fails for unknown ids", func(t *testing.T) {
			repo := NewAccountRepository(newTestDB(t))

			if _, err := repo.Get("missing"); err == nil {
				t.Error("expected error for unknown id")
			}
		})
	})

	t.Run("GetBySpotifyID retrieves by the unique user id", func(t *testing.T) {
		repo := NewAccountRepository(newTestDB(t))

		account := models.NewAccount(0, "spotify-user")
		if err := repo.Create(account); err != nil {
			t.Fatalf("failed to create account: %v", err)
		}

		found, err := repo.GetBySpotifyID("spotify-user")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found.ID() != account.ID() {
			t.Errorf("expected id %q, got %q", account.ID(), found.ID())
		}
	})

	t.Run("Update", func(t *testing.T) {
		t.Run("persists changed fields", func(t *testing.T) {
			repo := NewAccountRepository(newTestDB(t))

			account := models.NewAccount(0, "user-1")
			if err := repo.Create(account); err != nil {
				t.Fatalf("failed to create account: %v", err)
			}

			expiry := time.Now().Add(time.Hour)
			account.SetDisplayName("Renamed")
			account.SetTokens("new-access", "new-refresh", &expiry)

			if err := repo.Update(account); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			found, err := repo.Get(account.ID())
			if err != nil {
				t.Fatalf("failed to get account: %v", err)
			}
			if found.DisplayName() != "Renamed" {
				t.Errorf("unexpected display name %q", found.DisplayName())
			}
			if found.AccessToken() != "new-access" || found.RefreshToken() != "new-refresh" {
				t.Error("expected tokens to be persisted")
			}
			if found.TokenExpiresAt() == nil {
				t.Error("expected a token expiry")
			}
		})

		t.Run("fails for missing accounts", func(t *testing.T) {
			repo := NewAccountRepository(newTestDB(t))

			ghost := models.NewAccount(1, "user-1")
			ghost.SetID("no-such-id")

			if err := repo.Update(ghost); err == nil {
				t.Error("expected error for missing account")
			}
		})
	})

	t.Run("Delete", func(t *testing.T) {
		t.Run("soft deletes the account", func(t *testing.T) {
			repo := NewAccountRepository(newTestDB(t))

			account := models.NewAccount(0, "user-1")
			if err := repo.Create(account); err != nil {
				t.Fatalf("failed to create account: %v", err)
			}

			if err := repo.Delete(account.ID()); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if _, err := repo.Get(account.ID()); err == nil {
				t.Error("expected deleted account to be hidden")
			}
		})

		t.Run("fails when already deleted", func(t *testing.T) {
			repo := NewAccountRepository(newTestDB(t))

			account := models.NewAccount(0, "user-1")
			if err := repo.Create(account); err != nil {
				t.Fatalf("failed to create account: %v", err)
			}
			if err := repo.Delete(account.ID()); err != nil {
				t.Fatalf("failed to delete account: %v", err)
			}

			if err := repo.Delete(account.ID()); err == nil {
				t.Error("expected error on second delete")
			}
		})
	})

	t.Run("List", func(t *testing.T) {
		t.Run("orders by sequence", func(t *testing.T) {
			repo := NewAccountRepository(newTestDB(t))

			for _, id := range []string{"user-a", "user-b", "user-c"} {
				if err := repo.Create(models.NewAccount(0, id)); err != nil {
					t.Fatalf("failed to create account: %v", err)
				}
			}

			accounts, err := repo.List(nil)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(accounts) != 3 {
				t.Fatalf("expected 3 accounts, got %d", len(accounts))
			}
			for i, account := range accounts {
				if account.Sequence() != i+1 {
					t.Errorf("unexpected sequence %d at index %d", account.Sequence(), i)
				}
			}
		})

		t.Run("filters by spotify id", func(t *testing.T) {
			repo := NewAccountRepository(newTestDB(t))

			if err := repo.Create(models.NewAccount(0, "user-a")); err != nil {
				t.Fatalf("failed to create account: %v", err)
			}
			if err := repo.Create(models.NewAccount(0, "user-b")); err != nil {
				t.Fatalf("failed to create account: %v", err)
			}

			accounts, err := repo.List(map[string]any{"spotify_id": "user-b"})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(accounts) != 1 || accounts[0].SpotifyID() != "user-b" {
				t.Errorf("unexpected result %+v", accounts)
			}
		})

		t.Run("excludes soft-deleted accounts", func(t *testing.T) {
			repo := NewAccountRepository(newTestDB(t))

			keep := models.NewAccount(0, "user-a")
			drop := models.NewAccount(0, "user-b")
			if err := repo.Create(keep); err != nil {
				t.Fatalf("failed to create account: %v", err)
			}
			if err := repo.Create(drop); err != nil {
				t.Fatalf("failed to create account: %v", err)
			}
			if err := repo.Delete(drop.ID()); err != nil {
				t.Fatalf("failed to delete account: %v", err)
			}

			accounts, err := repo.List(nil)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(accounts) != 1 || accounts[0].SpotifyID() != "user-a" {
				t.Errorf("unexpected result %+v", accounts)
			}
		})
	})
}
