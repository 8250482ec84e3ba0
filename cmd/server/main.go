package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"evcharge-dashboard-server/internal/config"
	transport "evcharge-dashboard-server/internal/http"
	"evcharge-dashboard-server/internal/http/middleware"
	"evcharge-dashboard-server/internal/repo"
	"evcharge-dashboard-server/internal/services"
	"evcharge-dashboard-server/internal/store"
	"github.com/gin-gonic/gin"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Env)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	st, err := store.Open(cfg.DataFile)
	if err != nil {
		logger.Error("failed to open data file", "error", err, "path", cfg.DataFile)
		os.Exit(1)
	}

	if err := store.EnsureSeedUsers(st); err != nil {
		logger.Error("failed to seed users", "error", err)
		os.Exit(1)
	}
	logger.Info("data store ready", "path", st.Path())

	userRepo := repo.NewUserRepo(st)
	complaintRepo := repo.NewComplaintRepo(st)

	authService := services.NewAuthService(userRepo, cfg)
	complaintService := services.NewComplaintService(complaintRepo)

	router := transport.NewRouter(transport.Dependencies{
		Config:           cfg,
		AuthService:      authService,
		ComplaintService: complaintService,
		Logger:           logger,
		RateLimiter:      middleware.NewRateLimiter(cfg.RateLimitPerMinute),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.RequestTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RequestTimeout,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErrors:
		logger.Error("http server stopped unexpectedly", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("http server stopped")
}

func newLogger(env string) *slog.Logger {
	level := slog.LevelInfo
	if env != "prod" {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if env == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}
