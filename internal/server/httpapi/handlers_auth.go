package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/focusflow/backend/internal/errs"
)

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleSignup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return respondFailure(c, http.StatusBadRequest, "invalid request body")
	}
	if _, err := s.auth.Signup(c.Request().Context(), req.Username, req.Email, req.Password); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "signup successful"})
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondFailure(c, http.StatusBadRequest, "invalid request body")
	}
	sess, err := s.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		// unknown email and wrong password must be indistinguishable
		if errors.Is(err, errs.ErrNotFound) || errors.Is(err, errs.ErrBadCredentials) {
			return respondFailure(c, http.StatusUnauthorized, msgBadLogin)
		}
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"token":    sess.Token,
		"user_id":  sess.User.ID.String(),
		"username": sess.User.Username,
		"email":    sess.User.Email,
	})
}

func (s *Server) handleProfile(c echo.Context) error {
	sub, ok := subjectID(c)
	if !ok {
		return respondAuthError(c, errs.ErrMissingToken)
	}
	p, err := s.auth.Profile(c.Request().Context(), sub)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"user": map[string]any{
			"id":       p.ID.String(),
			"username": p.Username,
			"email":    p.Email,
		},
	})
}
