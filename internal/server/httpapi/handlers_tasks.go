package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/labstack/echo/v4"

	"github.com/focusflow/backend/internal/errs"
	"github.com/focusflow/backend/internal/model"
	"github.com/focusflow/backend/internal/service"
)

const dateLayout = "2006-01-02"

type taskRequest struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Time     string `json:"time"`
	Task     string `json:"task"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Duration string `json:"duration"`
}

func (r taskRequest) toInput() (service.TaskInput, error) {
	if r.Date == "" {
		return service.TaskInput{}, fmt.Errorf("%w: date is required", errs.ErrValidation)
	}
	d, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return service.TaskInput{}, fmt.Errorf("%w: date must be YYYY-MM-DD", errs.ErrValidation)
	}
	return service.TaskInput{
		Date:     d,
		Time:     r.Time,
		Title:    r.Task,
		Icon:     r.Icon,
		Color:    r.Color,
		Duration: r.Duration,
	}, nil
}

func taskJSON(t model.Task) map[string]any {
	return map[string]any{
		"id":       t.ID.String(),
		"date":     t.Date.Format(dateLayout),
		"time":     t.Time,
		"task":     t.Title,
		"icon":     t.Icon,
		"color":    t.Color,
		"duration": t.Duration,
	}
}

func (s *Server) handleTaskAdd(c echo.Context) error {
	sub, ok := subjectID(c)
	if !ok {
		return respondAuthError(c, errs.ErrMissingToken)
	}
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return respondFailure(c, http.StatusBadRequest, "invalid request body")
	}
	in, err := req.toInput()
	if err != nil {
		return s.fail(c, err)
	}
	t, err := s.tasks.Add(c.Request().Context(), sub, in)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "task": taskJSON(t)})
}

func (s *Server) handleTaskList(c echo.Context) error {
	sub, ok := subjectID(c)
	if !ok {
		return respondAuthError(c, errs.ErrMissingToken)
	}
	raw := c.QueryParam("date")
	if raw == "" {
		return respondFailure(c, http.StatusBadRequest, "missing date query parameter")
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return respondFailure(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	tasks, err := s.tasks.ListByDate(c.Request().Context(), sub, d)
	if err != nil {
		return s.fail(c, err)
	}
	out := make([]map[string]any, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskJSON(t))
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "tasks": out})
}

func (s *Server) handleTaskUpdate(c echo.Context) error {
	sub, ok := subjectID(c)
	if !ok {
		return respondAuthError(c, errs.ErrMissingToken)
	}
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		return respondFailure(c, http.StatusBadRequest, "invalid task id")
	}
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return respondFailure(c, http.StatusBadRequest, "invalid request body")
	}
	in, err := req.toInput()
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.tasks.Update(c.Request().Context(), sub, id, in); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleTaskDelete(c echo.Context) error {
	sub, ok := subjectID(c)
	if !ok {
		return respondAuthError(c, errs.ErrMissingToken)
	}
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		return respondFailure(c, http.StatusBadRequest, "invalid task id")
	}
	if err := s.tasks.Delete(c.Request().Context(), sub, id); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}
