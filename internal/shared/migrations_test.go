package shared

import (
	"testing"
)

func TestMigrations(t *testing.T) {
	t.Run("RunMigrations", func(t *testing.T) {
		t.Run("creates the accounts schema", func(t *testing.T) {
			db, err := NewDatabase(":memory:")
			if err != nil {
				t.Fatalf("failed to open database: %v", err)
			}
			defer db.Close()

			if err := RunMigrations(db); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if _, err := db.Exec(
				"INSERT INTO accounts (id, sequence, spotify_id) VALUES (?, ?, ?)",
				"test-id", 1, "spotify-user",
			); err != nil {
				t.Errorf("expected accounts table to exist: %v", err)
			}

			var value int
			if err := db.QueryRow("SELECT value FROM accounts_sequence WHERE id = 1").Scan(&value); err != nil {
				t.Errorf("expected seeded sequence table: %v", err)
			}
			if value != 0 {
				t.Errorf("expected sequence seed 0, got %d", value)
			}
		})

		t.Run("is idempotent", func(t *testing.T) {
			db, err := NewDatabase(":memory:")
			if err != nil {
				t.Fatalf("failed to open database: %v", err)
			}
			defer db.Close()

			if err := RunMigrations(db); err != nil {
				t.Fatalf("first run failed: %v", err)
			}
			if err := RunMigrations(db); err != nil {
				t.Fatalf("second run failed: %v", err)
			}
		})
	})

	t.Run("RollbackMigration", func(t *testing.T) {
		t.Run("drops the most recent migration", func(t *testing.T) {
			db, err := NewDatabase(":memory:")
			if err != nil {
				t.Fatalf("failed to open database: %v", err)
			}
			defer db.Close()

			if err := RunMigrations(db); err != nil {
				t.Fatalf("failed to run migrations: %v", err)
			}

			if err := RollbackMigration(db); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if _, err := db.Exec("SELECT 1 FROM accounts"); err == nil {
				t.Error("expected accounts table to be dropped")
			}
		})

		t.Run("fails with nothing applied", func(t *testing.T) {
			db, err := NewDatabase(":memory:")
			if err != nil {
				t.Fatalf("failed to open database: %v", err)
			}
			defer db.Close()

			if err := createMigrationsTable(db); err != nil {
				t.Fatalf("failed to create migrations table: %v", err)
			}

			if err := RollbackMigration(db); err == nil {
				t.Error("expected error with no applied migrations")
			}
		})
	})

	t.Run("loadMigrations pairs up and down scripts", func(t *testing.T) {
		migrations, err := loadMigrations()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(migrations) == 0 {
			t.Fatal("expected at least one migration")
		}

		for _, m := range migrations {
			if m.Up == "" || m.Down == "" {
				t.Errorf("migration %d is incomplete", m.Version)
			}
		}
	})
}
