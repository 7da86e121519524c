package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/focusflow/backend/internal/errs"
	"github.com/focusflow/backend/internal/model"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts a new user row. The unique index on email_lookup makes the
// insert the atomic uniqueness check; 23505 maps to errs.ErrAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (id, username_enc, email_enc, username_lookup, email_lookup, password_hash)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Pool.Exec(ctx, q, u.ID, u.UsernameEnc, u.EmailEnc, u.UsernameLookup, u.EmailLookup, u.PasswordHash)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("%w: insert user: %v", errs.ErrStorage, err)
	}
	return nil
}

// GetByEmailLookup selects a user by the email lookup digest.
func (r *UserRepo) GetByEmailLookup(ctx context.Context, lookup string) (*model.User, error) {
	const q = `
SELECT id, username_enc, email_enc, username_lookup, email_lookup, password_hash, created_at
FROM users WHERE email_lookup=$1`
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, lookup))
}

// GetByID selects a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	const q = `
SELECT id, username_enc, email_enc, username_lookup, email_lookup, password_hash, created_at
FROM users WHERE id=$1`
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, id))
}

func (r *UserRepo) scanOne(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.UsernameEnc, &u.EmailEnc, &u.UsernameLookup, &u.EmailLookup, &u.PasswordHash, &u.CreatedAt)
	switch {
	case err == nil:
		return &u, nil
	case errors.Is(err, pgx.ErrNoRows):
		return nil, errs.ErrNotFound
	case errors.Is(err, context.Canceled):
		return nil, err
	default:
		return nil, fmt.Errorf("%w: select user: %v", errs.ErrStorage, err)
	}
}
