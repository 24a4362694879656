package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/presswork-as/estimate-api/docs"
	"github.com/presswork-as/estimate-api/internal/aipricer"
	"github.com/presswork-as/estimate-api/internal/config"
	"github.com/presswork-as/estimate-api/internal/database"
	"github.com/presswork-as/estimate-api/internal/http/handler"
	"github.com/presswork-as/estimate-api/internal/http/middleware"
	"github.com/presswork-as/estimate-api/internal/http/router"
	"github.com/presswork-as/estimate-api/internal/jobs"
	"github.com/presswork-as/estimate-api/internal/logger"
	"github.com/presswork-as/estimate-api/internal/repository"
	"github.com/presswork-as/estimate-api/internal/service"
	"github.com/presswork-as/estimate-api/internal/storage"
	"github.com/presswork-as/estimate-api/internal/validation"
	"go.uber.org/zap"
)

// @title Presswork Estimate API
// @version 1.0
// @description Pricing and validation engine for print order estimation

// @contact.name API Support
// @contact.email support@presswork.no

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description API key for all estimation endpoints
// @Security ApiKeyAuth

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
	)

	// Configure Swagger host based on environment
	switch cfg.App.Environment {
	case "staging":
		docs.SwaggerInfo.Host = "estimate-staging.presswork.no"
	case "production":
		docs.SwaggerInfo.Host = "estimate.presswork.no"
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.App.Port)
	}

	// Connect to database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize storage
	artworkStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	// Initialize the external AI pricing client (optional). The app runs
	// with pure rule-based pricing when it is not configured.
	var proposals service.ProposalClient
	if client := aipricer.NewClient(&cfg.AIPricer, log); client != nil {
		proposals = client
	}

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(db)
	estimateRepo := repository.NewEstimateRepository(db)
	artworkRepo := repository.NewArtworkRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Initialize validation engine
	engine := validation.NewEngine(&cfg.Validation, &cfg.Pricing)

	// Initialize services
	auditLogService := service.NewAuditLogService(auditLogRepo, log)
	estimateService := service.NewEstimateService(orderRepo, estimateRepo, auditLogService, proposals, engine, cfg, log)
	orderService := service.NewOrderService(orderRepo, log)
	artworkService := service.NewArtworkService(orderRepo, artworkRepo, auditLogService, artworkStorage, &cfg.Storage, log)

	// Initialize middleware
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	estimateHandler := handler.NewEstimateHandler(estimateService, log)
	orderHandler := handler.NewOrderHandler(orderService, log)
	artworkHandler := handler.NewArtworkHandler(artworkService, &cfg.Storage, log)
	auditHandler := handler.NewAuditHandler(auditLogService, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		rateLimiter,
		estimateHandler,
		orderHandler,
		artworkHandler,
		auditHandler,
	)

	// Initialize and start scheduler for background jobs
	var scheduler *jobs.Scheduler
	if cfg.Jobs.EstimateExpiryEnabled {
		scheduler = jobs.NewScheduler(log)
		expiryJob := jobs.NewEstimateExpiryJob(estimateRepo, auditLogService, log)
		if err := scheduler.AddJob(jobs.EstimateExpiryJobName, cfg.Jobs.EstimateExpiryCron, expiryJob.Run); err != nil {
			log.Error("Failed to register estimate expiry job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started with estimate expiry job",
				zap.String("cron_expr", cfg.Jobs.EstimateExpiryCron),
				zap.Int("ttl_days", cfg.Jobs.EstimateTTLDays),
			)
		}
	} else {
		log.Info("Estimate expiry job disabled")
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		// Stop scheduler if running
		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
