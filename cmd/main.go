package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adpilot/internal/adapter/gateway"
	httpadapter "adpilot/internal/adapter/http"
	"adpilot/internal/adapter/postgres"
	"adpilot/internal/adapter/usecase"
	"adpilot/internal/alert"
	"adpilot/internal/config"
	"adpilot/internal/db"
	"adpilot/internal/notification"
	"adpilot/internal/poller"
)

// main is the entry point of the adpilot service. It loads configuration,
// optionally runs database migrations, initializes the database pool,
// repositories and the campaign lifecycle components, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down the
// server, the status pollers and the analytics refresher.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		opts := &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}
		if cfg.Log.JSONFormat() {
			handler = slog.NewJSONHandler(os.Stdout, opts)
		} else {
			handler = slog.NewTextHandler(os.Stdout, opts)
		}
		logger = slog.New(handler)
	}

	// Apply schema migrations before opening the pool.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Warn("seeding demo campaigns", slog.Any("error", err))
		}
	}

	repo := postgres.NewCampaignRepository(pool)
	gw := gateway.NewPlatformGateway(cfg.Gateway)
	center := notification.NewCenter(logger)

	svc := usecase.NewCampaignUseCase(repo, gw, center, logger)

	pollers := poller.NewManager(ctx, repo, gw, center, logger, cfg.Poll.Interval)
	svc.SetArmer(pollers)
	if err = pollers.ArmPending(ctx); err != nil {
		logger.Warn("arming pending campaigns", slog.Any("error", err))
	}

	engine := alert.NewEngine(alert.DefaultRules(cfg.Alerts), center, logger)
	refresher := alert.NewRefresher(repo, gw, engine, logger, cfg.Alerts.RefreshInterval)
	go refresher.Run(ctx)

	handler := httpadapter.NewHandler(svc, center, logger)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	shCtx, shCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shCancel()
	if err = srv.Shutdown(shCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}

	cancel()
	pollers.Close()
}
