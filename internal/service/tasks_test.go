package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/focusflow/backend/internal/errs"
	"github.com/focusflow/backend/internal/model"
	"github.com/focusflow/backend/internal/repository"
)

type fakeTasks struct {
	byID map[uuid.UUID]*model.Task

	createErr error
}

var _ repository.TaskRepository = (*fakeTasks)(nil)

func (f *fakeTasks) Create(_ context.Context, t *model.Task) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.byID == nil {
		f.byID = map[uuid.UUID]*model.Task{}
	}
	cpy := *t
	f.byID[t.ID] = &cpy
	return nil
}

func (f *fakeTasks) ListByDate(_ context.Context, userID uuid.UUID, day time.Time) ([]model.Task, error) {
	out := []model.Task{}
	for _, t := range f.byID {
		if t.UserID == userID && t.Date.Equal(day) {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}

func (f *fakeTasks) Update(_ context.Context, t *model.Task) error {
	cur, ok := f.byID[t.ID]
	if !ok || cur.UserID != t.UserID {
		return errs.ErrNotFound
	}
	cpy := *t
	f.byID[t.ID] = &cpy
	return nil
}

func (f *fakeTasks) Delete(_ context.Context, userID, id uuid.UUID) error {
	cur, ok := f.byID[id]
	if !ok || cur.UserID != userID {
		return errs.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestTaskAddAndList(t *testing.T) {
	t.Parallel()

	s := NewTaskService(&fakeTasks{})
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	late, err := s.Add(ctx, userID, TaskInput{Date: day("2025-06-01"), Time: "14:00", Title: "review"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	early, err := s.Add(ctx, userID, TaskInput{Date: day("2025-06-01"), Time: "08:30", Title: "  run  "})
	if err != nil {
		t.Fatalf("Add(2): %v", err)
	}
	if early.Title != "run" {
		t.Fatalf("title not trimmed: %q", early.Title)
	}

	got, err := s.ListByDate(ctx, userID, day("2025-06-01"))
	if err != nil {
		t.Fatalf("ListByDate: %v", err)
	}
	if len(got) != 2 || got[0].ID != early.ID || got[1].ID != late.ID {
		t.Fatalf("unexpected order/content: %+v", got)
	}

	// another user's day is empty
	other, err := s.ListByDate(ctx, uuid.Must(uuid.NewV4()), day("2025-06-01"))
	if err != nil {
		t.Fatalf("ListByDate(other): %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("tasks leaked across users: %+v", other)
	}
}

func TestTaskAdd_Validation(t *testing.T) {
	t.Parallel()

	s := NewTaskService(&fakeTasks{})
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	if _, err := s.Add(ctx, userID, TaskInput{Time: "08:30", Title: "run"}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("missing date: got %v, want ErrValidation", err)
	}
	if _, err := s.Add(ctx, userID, TaskInput{Date: day("2025-06-01"), Title: "  "}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("blank title: got %v, want ErrValidation", err)
	}
	if _, err := s.ListByDate(ctx, userID, time.Time{}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("zero day: got %v, want ErrValidation", err)
	}
}

func TestTaskUpdateDelete_OwnershipScoped(t *testing.T) {
	t.Parallel()

	s := NewTaskService(&fakeTasks{})
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())
	stranger := uuid.Must(uuid.NewV4())

	task, err := s.Add(ctx, owner, TaskInput{Date: day("2025-06-01"), Time: "08:30", Title: "run"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	in := TaskInput{Date: day("2025-06-02"), Time: "09:00", Title: "long run"}
	if err := s.Update(ctx, stranger, task.ID, in); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("foreign update: got %v, want ErrNotFound", err)
	}
	if err := s.Update(ctx, owner, task.ID, in); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if err := s.Delete(ctx, stranger, task.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("foreign delete: got %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, owner, task.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, owner, task.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("double delete: got %v, want ErrNotFound", err)
	}
}
