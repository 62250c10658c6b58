package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-treeservices-backend/config"
	v1 "go-treeservices-backend/internal/delivery/http/v1"
	"go-treeservices-backend/internal/usecase"
	"go-treeservices-backend/pkg/email"
	"go-treeservices-backend/pkg/logger"
	"go-treeservices-backend/pkg/redis"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting consultation backend", "port", cfg.Port)

	// 3. Setup Redis (optional; rate limiter falls back to in-memory)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory store", "error", err)
	}
	defer redis.Close()

	// 4. Setup Email Sender
	sender := email.NewResendSender(cfg.ResendAPIKey)
	if !sender.IsConfigured() {
		logger.Log.Warn("Email sender not configured - consultation requests will fail")
	}

	// 5. Setup UseCases
	consultationUC := usecase.NewConsultationUsecase(sender, cfg.FromAddress, cfg.NotificationEmail)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ConsultationUC: consultationUC,
		Config:         cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
