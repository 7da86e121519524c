package httpapi

import (
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/focusflow/backend/internal/errs"
	"github.com/focusflow/backend/internal/token"
)

const subjectKey = "ff.subject"

// AuthGate extracts the bearer token, validates it and stores the subject id
// in the request context. On any failure the wrapped handler never runs.
func AuthGate(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c.Request())
			if err != nil {
				return respondAuthError(c, err)
			}
			sub, err := tokens.Validate(raw)
			if err != nil {
				return respondAuthError(c, err)
			}
			c.Set(subjectKey, sub)
			return next(c)
		}
	}
}

// bearerToken pulls the credential out of the Authorization header.
func bearerToken(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return "", errs.ErrMissingToken
	}
	raw, ok := strings.CutPrefix(h, "Bearer ")
	if !ok {
		return "", errs.ErrMissingToken
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errs.ErrMissingToken
	}
	return raw, nil
}

// subjectID returns the authenticated user id stored by AuthGate.
func subjectID(c echo.Context) (uuid.UUID, bool) {
	v := c.Get(subjectKey)
	if v == nil {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// RequestLogger logs request metadata through zap. Bodies are never logged.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			log.Info("http",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("dur", time.Since(start)),
				zap.String("remote", c.RealIP()),
			)
			return err
		}
	}
}

// Recover converts handler panics into a generic 500 response.
func Recover(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error("panic",
						zap.Any("reason", r),
						zap.ByteString("stack", debug.Stack()),
						zap.String("path", c.Request().URL.Path),
					)
					err = respondFailure(c, http.StatusInternalServerError, msgServerError)
				}
			}()
			return next(c)
		}
	}
}
