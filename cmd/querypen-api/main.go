package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/querypen/querypen/internal/api"
	"github.com/querypen/querypen/internal/auth"
	"github.com/querypen/querypen/internal/chat"
	"github.com/querypen/querypen/internal/config"
	"github.com/querypen/querypen/internal/llm"
	"github.com/querypen/querypen/internal/observability"
	"github.com/querypen/querypen/internal/store"
	duckdbstore "github.com/querypen/querypen/internal/store/duckdb"
	postgresstore "github.com/querypen/querypen/internal/store/postgres"
)

func main() {
	cfg, err := config.LoadFromEnv("querypen-api")
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg, os.Stdout)

	sandboxDB, err := openSandbox(context.Background(), cfg)
	if err != nil {
		logger.Error("failed to open sandbox db", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() { _ = sandboxDB.Close() }()

	executor := store.NewSQLExecutor(sandboxDB, logger)

	var model llm.Client
	modelName := ""
	if cfg.AI.APIKey != "" {
		client, err := llm.NewOpenAIClient(llm.OpenAIConfig{
			BaseURL:     cfg.AI.BaseURL,
			APIKey:      cfg.AI.APIKey,
			Model:       cfg.AI.Model,
			Temperature: cfg.AI.Temperature,
			Timeout:     cfg.AI.Timeout,
		})
		if err != nil {
			logger.Error("failed to initialize model client", slog.Any("error", err))
			os.Exit(1)
		}
		model = client
		modelName = client.Model()
	} else {
		logger.Warn("no model api key configured; generate and chat endpoints are disabled")
	}

	deps := api.Dependencies{
		Logger:            logger,
		Readiness:         api.CombineReadinessChecks(api.CheckDatabase(sandboxDB)),
		DependencyTimeout: time.Second,
		Model:             model,
		ModelName:         modelName,
		Executor:          executor,
	}
	if model != nil {
		deps.Readiness = api.CombineReadinessChecks(api.CheckDatabase(sandboxDB), api.CheckModelConfig(cfg))
		deps.Chat = &chat.Orchestrator{Model: model, Executor: executor, Logger: logger}
	}
	if cfg.Auth.Required {
		validator, err := auth.NewStaticAPIKeyValidator(cfg.Auth.StaticKeys)
		if err != nil {
			logger.Error("failed to parse static auth keys", slog.Any("error", err))
			os.Exit(1)
		}
		deps.AuthMiddleware = auth.Middleware(logger, validator)
	}

	handler := api.NewHandler(cfg, deps)
	server := &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting api server",
			slog.String("addr", cfg.HTTP.Address),
			slog.String("driver", cfg.Database.Driver),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("api server failed", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down api server")
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
		_ = server.Close()
		os.Exit(1)
	}
}

func openSandbox(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.Database.Driver == config.DriverDuckDB {
		return duckdbstore.Open(ctx, duckdbstore.DBConfig{
			Path:         cfg.Database.Path,
			MaxOpenConns: cfg.Database.MaxOpenConns,
		})
	}
	return postgresstore.Open(ctx, postgresstore.DBConfig{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
}
