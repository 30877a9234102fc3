package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-web/config"
	_ "todo-web/docs" // Swagger docs
	"todo-web/internal/httpserver"
	"todo-web/internal/todo/repository/jsonfile"
	"todo-web/pkg/log"
)

// @title       Todo Web
// @description Authenticated web front-end over a directory of JSON todo lists.
// @version     1
// @host        localhost:8000
// @schemes     http
// @securityDefinitions.basic BasicAuth
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Todo Web...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Todo directory: %s", cfg.Storage.TodoDir)

	// 3. Storage
	todoRepo, err := jsonfile.New(cfg.Storage.TodoDir, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize todo storage: ", err)
		os.Exit(1)
	}
	if _, err := todoRepo.ListFiles(ctx); err != nil {
		logger.Warnf(ctx, "Todo directory is not readable yet: %v", err)
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Host:            cfg.HTTPServer.Host,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		StaticDir:       cfg.Storage.StaticDir,
		TodoRepository:  todoRepo,
		Auth:            cfg.Auth,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
