package repository

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/focusflow/backend/internal/model"
)

// TaskRepository persists tasks. Every operation is scoped by the owning
// user id; touching another user's task behaves like errs.ErrNotFound.
type TaskRepository interface {
	// Create inserts a new task.
	Create(ctx context.Context, t *model.Task) error
	// ListByDate returns the user's tasks for a calendar day, ordered by time.
	ListByDate(ctx context.Context, userID uuid.UUID, day time.Time) ([]model.Task, error)
	// Update rewrites a task owned by the user.
	Update(ctx context.Context, t *model.Task) error
	// Delete removes a task owned by the user.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
