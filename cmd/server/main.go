// Command server starts the FocusFlow backend.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/focusflow/backend/internal/config"
	pkgcrypto "github.com/focusflow/backend/internal/crypto"
	"github.com/focusflow/backend/internal/migrate"
	"github.com/focusflow/backend/internal/repository/postgres"
	"github.com/focusflow/backend/internal/server/httpapi"
	"github.com/focusflow/backend/internal/service"
	"github.com/focusflow/backend/internal/token"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, runs migrations and serves the HTTP API until
// SIGINT/SIGTERM, then drains connections.
func main() {
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
	)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.DSN); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	db, err := postgres.New(ctx, cfg.DSN)
	if err != nil {
		logger.Fatal("postgres.New", zap.Error(err))
	}
	defer db.Close()

	codec, err := pkgcrypto.NewCodec(cfg.EncKey)
	if err != nil {
		logger.Fatal("field codec", zap.Error(err))
	}
	index, err := pkgcrypto.NewIndexer(cfg.EncKey)
	if err != nil {
		logger.Fatal("lookup indexer", zap.Error(err))
	}
	tokens := token.NewService(cfg.SignKey, cfg.TokenTTL)

	authSvc := service.NewAuthService(postgres.NewUserRepo(db), codec, index, tokens)
	taskSvc := service.NewTaskService(postgres.NewTaskRepo(db))

	e := echo.New()
	httpapi.New(authSvc, taskSvc, tokens, logger).Register(e)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Address))
		errCh <- e.Start(cfg.Address)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("shutdown complete")
}
