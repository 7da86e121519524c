package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/focusflow/backend/internal/errs"
	"github.com/focusflow/backend/internal/model"
)

// TaskRepo implements TaskRepository using PostgreSQL.
type TaskRepo struct{ db *DB }

// NewTaskRepo constructs a task repository.
func NewTaskRepo(db *DB) *TaskRepo { return &TaskRepo{db: db} }

// Create inserts a new task row.
func (r *TaskRepo) Create(ctx context.Context, t *model.Task) error {
	const q = `
INSERT INTO tasks (id, user_id, date, time, title, icon, color, duration)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Pool.Exec(ctx, q, t.ID, t.UserID, t.Date, t.Time, t.Title, t.Icon, t.Color, t.Duration)
	if err != nil {
		return fmt.Errorf("%w: insert task: %v", errs.ErrStorage, err)
	}
	return nil
}

// ListByDate returns the user's tasks for one calendar day, ordered by time.
func (r *TaskRepo) ListByDate(ctx context.Context, userID uuid.UUID, day time.Time) ([]model.Task, error) {
	const q = `
SELECT id, user_id, date, time, title, icon, color, duration, created_at
FROM tasks WHERE user_id=$1 AND date=$2
ORDER BY time ASC`
	rows, err := r.db.Pool.Query(ctx, q, userID, day)
	if err != nil {
		return nil, fmt.Errorf("%w: select tasks: %v", errs.ErrStorage, err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Date, &t.Time, &t.Title, &t.Icon, &t.Color, &t.Duration, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan task: %v", errs.ErrStorage, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate tasks: %v", errs.ErrStorage, err)
	}
	return tasks, nil
}

// Update rewrites a task; the WHERE clause scopes the write to the owner, so
// a foreign or missing task affects zero rows and reports errs.ErrNotFound.
func (r *TaskRepo) Update(ctx context.Context, t *model.Task) error {
	const q = `
UPDATE tasks
SET date=$3, time=$4, title=$5, icon=$6, color=$7, duration=$8
WHERE id=$1 AND user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, t.ID, t.UserID, t.Date, t.Time, t.Title, t.Icon, t.Color, t.Duration)
	if err != nil {
		return fmt.Errorf("%w: update task: %v", errs.ErrStorage, err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes a task owned by the user.
func (r *TaskRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const q = `DELETE FROM tasks WHERE id=$1 AND user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, id, userID)
	if err != nil {
		return fmt.Errorf("%w: delete task: %v", errs.ErrStorage, err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
