package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/focusflow/backend/internal/errs"
	"github.com/focusflow/backend/internal/model"
	"github.com/focusflow/backend/internal/repository"
)

// TaskInput carries the client-editable fields of a task.
type TaskInput struct {
	Date     time.Time
	Time     string
	Title    string
	Icon     string
	Color    string
	Duration string
}

// TaskService defines task operations, always scoped to the authenticated subject.
type TaskService interface {
	// Add creates a task for the user.
	Add(ctx context.Context, userID uuid.UUID, in TaskInput) (model.Task, error)
	// ListByDate returns the user's tasks for one calendar day.
	ListByDate(ctx context.Context, userID uuid.UUID, day time.Time) ([]model.Task, error)
	// Update rewrites one of the user's tasks.
	Update(ctx context.Context, userID, id uuid.UUID, in TaskInput) error
	// Delete removes one of the user's tasks.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type TaskServiceImpl struct {
	tasks repository.TaskRepository
}

// NewTaskService constructs TaskService.
func NewTaskService(tasks repository.TaskRepository) *TaskServiceImpl {
	return &TaskServiceImpl{tasks: tasks}
}

func validateTaskInput(in TaskInput) error {
	if in.Date.IsZero() {
		return fmt.Errorf("%w: date is required", errs.ErrValidation)
	}
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: task title is required", errs.ErrValidation)
	}
	return nil
}

// Add validates input and inserts a new task owned by the user.
func (s *TaskServiceImpl) Add(ctx context.Context, userID uuid.UUID, in TaskInput) (model.Task, error) {
	if err := validateTaskInput(in); err != nil {
		return model.Task{}, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return model.Task{}, err
	}
	t := model.Task{
		ID:       id,
		UserID:   userID,
		Date:     in.Date,
		Time:     in.Time,
		Title:    strings.TrimSpace(in.Title),
		Icon:     in.Icon,
		Color:    in.Color,
		Duration: in.Duration,
	}
	if err := s.tasks.Create(ctx, &t); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

// ListByDate returns the user's tasks for the given day.
func (s *TaskServiceImpl) ListByDate(ctx context.Context, userID uuid.UUID, day time.Time) ([]model.Task, error) {
	if day.IsZero() {
		return nil, fmt.Errorf("%w: date is required", errs.ErrValidation)
	}
	return s.tasks.ListByDate(ctx, userID, day)
}

// Update rewrites the task if it belongs to the user.
func (s *TaskServiceImpl) Update(ctx context.Context, userID, id uuid.UUID, in TaskInput) error {
	if err := validateTaskInput(in); err != nil {
		return err
	}
	t := model.Task{
		ID:       id,
		UserID:   userID,
		Date:     in.Date,
		Time:     in.Time,
		Title:    strings.TrimSpace(in.Title),
		Icon:     in.Icon,
		Color:    in.Color,
		Duration: in.Duration,
	}
	return s.tasks.Update(ctx, &t)
}

// Delete removes the task if it belongs to the user.
func (s *TaskServiceImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.tasks.Delete(ctx, userID, id)
}
