// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/focusflow/backend/internal/model"
)

// UserRepository persists user credential records. Uniqueness of the email
// lookup digest is enforced by the store itself, so a concurrent duplicate
// signup surfaces as errs.ErrAlreadyExists from Create rather than racing a
// separate existence check.
type UserRepository interface {
	// Create inserts a new user. Returns errs.ErrAlreadyExists when the
	// email lookup digest is already taken.
	Create(ctx context.Context, u *model.User) error
	// GetByEmailLookup loads a user by the email lookup digest.
	GetByEmailLookup(ctx context.Context, lookup string) (*model.User, error)
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}
