// Package httpapi exposes the FocusFlow HTTP JSON API.
package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/focusflow/backend/internal/service"
	"github.com/focusflow/backend/internal/token"
)

// Server wires services into HTTP handlers.
type Server struct {
	auth   service.AuthService
	tasks  service.TaskService
	tokens *token.Service
	log    *zap.Logger
}

// New constructs a Server with injected services.
func New(auth service.AuthService, tasks service.TaskService, tokens *token.Service, log *zap.Logger) *Server {
	return &Server{auth: auth, tasks: tasks, tokens: tokens, log: log}
}

// Register mounts all routes and middleware on the echo instance.
// Everything under the gated group runs the auth gate before business logic.
func (s *Server) Register(e *echo.Echo) {
	e.HideBanner = true
	e.Use(Recover(s.log))
	e.Use(RequestLogger(s.log))
	e.Use(echomw.CORS())

	e.GET("/", s.handleHealth)
	e.POST("/signup", s.handleSignup)
	e.POST("/login", s.handleLogin)

	g := e.Group("")
	g.Use(AuthGate(s.tokens))
	g.GET("/profile", s.handleProfile)
	g.POST("/profile", s.handleProfile)
	g.POST("/tasks", s.handleTaskAdd)
	g.GET("/tasks", s.handleTaskList)
	g.PUT("/tasks/:id", s.handleTaskUpdate)
	g.DELETE("/tasks/:id", s.handleTaskDelete)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "msg": "FocusFlow backend running"})
}
