package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	apiHttp "github.com/citypulse/backend/internal/api/http"
	"github.com/citypulse/backend/internal/config"
	"github.com/citypulse/backend/internal/db"
	"github.com/citypulse/backend/internal/repository"
	"github.com/citypulse/backend/internal/server"
	"github.com/citypulse/backend/internal/service"
	"github.com/citypulse/backend/pkg/logger"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	appLogger, err := logger.Setup(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger setup failed: %s", err)
	}
	defer appLogger.Sync() //nolint:errcheck

	appLogger.Info("starting city pulse api", zap.String("env", cfg.Env), zap.String("db_driver", cfg.Database.Driver))
	appLogger.Debug("debug messages are enabled")

	// Init database
	dbConn, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Error("database connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			appLogger.Error("error when closing", zap.Error(err))
		}
	}()
	appLogger.Info("database connection done")

	// Schema is created idempotently on every startup.
	if err := db.InitSchema(context.Background(), dbConn); err != nil {
		appLogger.Error("schema init failed", zap.Error(err))
		os.Exit(1)
	}

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbConn)
	services := service.NewServices(service.Deps{
		Config: cfg,
		Repos:  repos,
	})
	handlers := apiHttp.NewHandlers(services, cfg)

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	appLogger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Error("failed to stop server", zap.Error(err))
	}

	appLogger.Info("app stopped")
}
