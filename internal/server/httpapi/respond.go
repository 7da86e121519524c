package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/focusflow/backend/internal/errs"
)

// Externally visible failure messages. Login failures share one message so
// clients cannot tell an unknown email from a wrong password.
const (
	msgServerError   = "internal server error"
	msgBadLogin      = "invalid email or password"
	msgDuplicateUser = "user already exists"
	msgMissingBearer = "missing bearer token"
	msgInvalidToken  = "invalid token"
	msgExpiredToken  = "token expired"
)

func respondFailure(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]any{"success": false, "message": msg})
}

func respondAuthError(c echo.Context, err error) error {
	msg := msgInvalidToken
	switch {
	case errors.Is(err, errs.ErrMissingToken):
		msg = msgMissingBearer
	case errors.Is(err, errs.ErrExpiredToken):
		msg = msgExpiredToken
	}
	return respondFailure(c, http.StatusUnauthorized, msg)
}

// fail maps service errors onto the closed response taxonomy. Internal
// faults are logged in full and surfaced only as a generic message.
func (s *Server) fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return respondFailure(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrAlreadyExists):
		return respondFailure(c, http.StatusConflict, msgDuplicateUser)
	case errors.Is(err, errs.ErrNotFound):
		return respondFailure(c, http.StatusNotFound, "not found")
	case errors.Is(err, errs.ErrMissingToken),
		errors.Is(err, errs.ErrInvalidToken),
		errors.Is(err, errs.ErrExpiredToken):
		return respondAuthError(c, err)
	default:
		s.log.Error("request failed",
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
		return respondFailure(c, http.StatusInternalServerError, msgServerError)
	}
}
