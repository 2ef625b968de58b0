package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baharkarakas/book-manager/internal/api"
	"github.com/baharkarakas/book-manager/internal/auth"
	"github.com/baharkarakas/book-manager/internal/config"
	"github.com/baharkarakas/book-manager/internal/logger"
	"github.com/baharkarakas/book-manager/internal/metrics"
	"github.com/baharkarakas/book-manager/internal/repository/memory"
	"github.com/baharkarakas/book-manager/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(os.Stdout, cfg.Env, cfg.Level())
	slog.SetDefault(log)

	switch parseCommand(os.Args[1:]) {
	case commandHealthcheck:
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := runHealthcheck(ctx, "http://localhost"+cfg.Addr()+"/health"); err != nil {
			log.Error("healthcheck", "err", err)
			os.Exit(1)
		}
		return
	case commandServe:
		if err := serve(cfg, log); err != nil {
			log.Error("server", "err", err)
			os.Exit(1)
		}
	}
}

func serve(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos := memory.NewRepositories(cfg.Credentials())
	tm := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)

	authSvc := services.NewAuthService(repos.Credentials, tm)
	bookSvc := services.NewBookService(repos.Books)

	metrics.Init()
	if n, err := repos.Books.Count(ctx); err == nil {
		metrics.BooksStored.Set(float64(n))
	}

	r := api.NewRouter(api.RouterDeps{
		Cfg:      cfg,
		Logger:   log,
		AuthSvc:  authSvc,
		BookSvc:  bookSvc,
		Verifier: tm,
		Started:  time.Now(),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("config",
		"env", cfg.Env,
		"base_path", cfg.APIBasePath,
		"issuer", cfg.JWTIssuer,
		"token_ttl", cfg.TokenTTL.String(),
		"users", len(cfg.Credentials()),
		"web", cfg.WebEnabled,
	)
	if cfg.JWTSecret == "secret123" && cfg.Env == "prod" {
		log.Warn("JWT_SECRET is the default value")
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
