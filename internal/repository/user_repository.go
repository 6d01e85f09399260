package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Norahnjesh/Transport-Solution/internal/models"
	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an insert hits the unique
	// constraint on email.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository owns all access to the users table.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// EnsureSchema creates the users table if it does not exist. Idempotent;
// called once by the hosting process at startup.
func (r *UserRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT,
			provider TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	return nil
}

// Create inserts the user and fills in the storage-assigned ID. The unique
// constraint on email is the authoritative conflict signal: a violation is
// reported as ErrDuplicateEmail even if a prior existence check passed.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password_hash, provider, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, nullString(user.PasswordHash), user.Provider, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, provider, created_at
		FROM users
		WHERE email = $1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, provider, created_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	var passwordHash sql.NullString

	err := row.Scan(&user.ID, &user.Name, &user.Email, &passwordHash, &user.Provider, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if passwordHash.Valid {
		user.PasswordHash = passwordHash.String
	}
	return &user, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
