package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"klture/internal/config"
	"klture/internal/db"
	"klture/internal/email"
	"klture/internal/logger"
	"klture/internal/server"
)

// @title           KLTURE.MEDIA API
// @version         1.0
// @description     Credit-ledger enrollment API for the KLTURE.MEDIA education platform.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations applied")

	emailService := email.New(
		cfg.EmailFrom, cfg.EmailFromName,
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass,
		cfg.RedisAddr,
	)
	defer emailService.Close()

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go emailService.Start(workerCtx)

	srv := server.New(database, cfg, emailService)

	go func() {
		logger.Infof("Server listening on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	stopWorker()

	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Errorf("Forced shutdown: %v", err)
	}
	logger.Info("Server stopped")
}
