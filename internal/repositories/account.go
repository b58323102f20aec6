package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lunamoth/spx/internal/models"
	"github.com/lunamoth/spx/internal/shared"
)

// AccountRepository implements [models.Repository] for [models.Account]
// persistence.
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new [AccountRepository] with the given database connection
func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts a new account into the database with generated ID and sequence
func (r *AccountRepository) Create(account *models.Account) error {
	sequence, err := NextSequence(r.db, "accounts")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	account.SetSequence(sequence)
	account.SetID(shared.GenerateID())

	if err := account.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO accounts (
			id, sequence, spotify_id, display_name, spotify_avatar,
			spotify_token, spotify_refresh_token, spotify_token_expires_at,
			created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		account.ID(),
		account.Sequence(),
		account.SpotifyID(),
		account.DisplayName(),
		account.Avatar(),
		account.AccessToken(),
		account.RefreshToken(),
		account.TokenExpiresAt(),
		account.CreatedAt(),
		account.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}

	return nil
}

// Get retrieves an account by ID, excluding soft-deleted accounts
func (r *AccountRepository) Get(id string) (*models.Account, error) {
	query := selectAccounts + " WHERE id = ? AND deleted_at IS NULL"
	return r.scanOne(r.db.QueryRow(query, id))
}

// GetBySpotifyID retrieves an account by its unique Spotify user ID.
func (r *AccountRepository) GetBySpotifyID(spotifyID string) (*models.Account, error) {
	query := selectAccounts + " WHERE spotify_id = ? AND deleted_at IS NULL"
	return r.scanOne(r.db.QueryRow(query, spotifyID))
}

// Update modifies an existing account in the database
func (r *AccountRepository) Update(account *models.Account) error {
	if err := account.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	account.SetUpdatedAt(now)

	query := `
		UPDATE accounts
		SET display_name = ?, spotify_avatar = ?, spotify_token = ?,
			spotify_refresh_token = ?, spotify_token_expires_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		account.DisplayName(),
		account.Avatar(),
		account.AccessToken(),
		account.RefreshToken(),
		account.TokenExpiresAt(),
		now,
		account.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("account not found or already deleted: %s", account.ID())
	}

	return nil
}

// Delete soft-deletes an account by ID
func (r *AccountRepository) Delete(id string) error {
	query := `
		UPDATE accounts
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("account not found or already deleted: %s", id)
	}

	return nil
}

// List retrieves all accounts matching the given criteria, excluding soft-deleted accounts
func (r *AccountRepository) List(criteria map[string]any) ([]*models.Account, error) {
	query := selectAccounts + " WHERE deleted_at IS NULL"
	args := []any{}

	if spotifyID, ok := criteria["spotify_id"].(string); ok && spotifyID != "" {
		query += " AND spotify_id = ?"
		args = append(args, spotifyID)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		account, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return accounts, nil
}

const selectAccounts = `
	SELECT id, sequence, spotify_id, display_name, spotify_avatar,
		spotify_token, spotify_refresh_token, spotify_token_expires_at,
		created_at, updated_at, deleted_at
	FROM accounts
`

type accountRow struct {
	id             string
	sequence       int
	spotifyID      string
	displayName    sql.NullString
	avatar         sql.NullString
	accessToken    sql.NullString
	refreshToken   sql.NullString
	tokenExpiresAt sql.NullTime
	createdAt      time.Time
	updatedAt      time.Time
	deletedAt      sql.NullTime
}

func (row accountRow) toModel() *models.Account {
	account := models.NewAccount(row.sequence, row.spotifyID)
	account.SetID(row.id)
	account.SetDisplayName(row.displayName.String)
	account.SetAvatar(row.avatar.String)

	var expiresAt *time.Time
	if row.tokenExpiresAt.Valid {
		expiresAt = &row.tokenExpiresAt.Time
	}
	account.SetTokens(row.accessToken.String, row.refreshToken.String, expiresAt)

	account.SetUpdatedAt(row.updatedAt)
	if row.deletedAt.Valid {
		account.SetDeletedAt(&row.deletedAt.Time)
	}

	return account
}

// scanOne scans a single [sql.Row] into a [models.Account]
func (r *AccountRepository) scanOne(row *sql.Row) (*models.Account, error) {
	var a accountRow

	err := row.Scan(
		&a.id, &a.sequence, &a.spotifyID, &a.displayName, &a.avatar,
		&a.accessToken, &a.refreshToken, &a.tokenExpiresAt,
		&a.createdAt, &a.updatedAt, &a.deletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("account not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}

	return a.toModel(), nil
}

// scanRow scans a row from [sql.Rows] into a [models.Account]
func (r *AccountRepository) scanRow(rows *sql.Rows) (*models.Account, error) {
	var a accountRow

	err := rows.Scan(
		&a.id, &a.sequence, &a.spotifyID, &a.displayName, &a.avatar,
		&a.accessToken, &a.refreshToken, &a.tokenExpiresAt,
		&a.createdAt, &a.updatedAt, &a.deletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}

	return a.toModel(), nil
}
