package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chat-task-manager/config"
	_ "chat-task-manager/docs" // Swagger docs
	"chat-task-manager/internal/agent"
	"chat-task-manager/internal/agent/orchestrator"
	"chat-task-manager/internal/agent/tools"
	"chat-task-manager/internal/chat"
	"chat-task-manager/internal/httpserver"
	"chat-task-manager/internal/intake"
	"chat-task-manager/internal/task/repository/sqlite"
	"chat-task-manager/internal/task/usecase"
	"chat-task-manager/pkg/duedate"
	"chat-task-manager/pkg/llmprovider"
	"chat-task-manager/pkg/log"
	"chat-task-manager/pkg/retry"
)

// @title       Chat Task Manager API
// @description Chat-driven task manager: an LLM agent turns free-text messages into stored tasks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Chat Task Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	repo, err := sqlite.New(logger, cfg.Storage.SQLitePath)
	if err != nil {
		logger.Errorf(ctx, "Failed to open sqlite storage: %v", err)
		return
	}
	defer repo.Close()
	logger.Infof(ctx, "SQLite storage ready at %s", cfg.Storage.SQLitePath)

	// 4. LLM providers with fallback
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 0),
	}, logger)

	// 5. Due date resolution
	resolver, err := duedate.NewResolver(cfg.Intake.Timezone, logger)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Intake.Timezone, err)
		resolver, _ = duedate.NewResolver("UTC", logger)
	}

	// 6. Intake pipeline and task usecase
	intakePolicy := retry.Policy{
		Attempts: cfg.Intake.RetryAttempts,
		Delay:    parseDuration(cfg.Intake.RetryDelay, retry.DefaultDelay),
	}
	pipeline := intake.New(logger, manager, resolver, intakePolicy)
	taskUC := usecase.New(logger, pipeline, repo)

	// 7. Agent loop
	taskTools, err := retry.Do(ctx, retry.DefaultPolicy(), logger, "connect task tools",
		func(ctx context.Context) ([]agent.Tool, error) {
			return tools.Connect(ctx, taskUC, repo)
		})
	if err != nil {
		logger.Errorf(ctx, "Failed to connect task tools: %v", err)
		return
	}
	registry := agent.NewToolRegistry()
	for _, tool := range taskTools {
		registry.Register(tool)
	}
	orch := orchestrator.New(manager, registry, logger, orchestrator.Config{
		Timezone:        cfg.Intake.Timezone,
		MaxSteps:        cfg.Agent.MaxSteps,
		SessionTTL:      parseDuration(cfg.Agent.SessionTTL, orchestrator.DefaultSessionTTL),
		SessionCapacity: cfg.Agent.SessionCapacity,
		Retry: retry.Policy{
			Attempts: cfg.LLM.RetryAttempts,
			Delay:    parseDuration(cfg.LLM.RetryDelay, retry.DefaultDelay),
		},
	})

	// 8. Chat delivery
	chatHandler := chat.New(logger, orch, taskUC)

	// 9. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		ChatHandler:     chatHandler,
		Repository:      repo,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// parseDuration parses the config duration string, falling back when empty or invalid.
func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
