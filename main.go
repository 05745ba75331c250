// File: tripcheckout/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"tripcheckout/config"
	"tripcheckout/cron"
	"tripcheckout/database"
	recordsRepo "tripcheckout/database/repository/records"
	"tripcheckout/handlers"
	"tripcheckout/metrics"
	"tripcheckout/middleware"
	"tripcheckout/routes"
	"tripcheckout/services/checkout"
	"tripcheckout/services/payments"
	"tripcheckout/services/tasks"
	"tripcheckout/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: failed to load config: %v", err)
	}
	logger, err := utils.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("main: failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("main: invalid configuration", zap.Error(err))
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	checks := map[string]utils.CheckFunc{}
	var publisher checkout.RecordPublisher = checkout.NopPublisher{}

	// Audit queue.
	if cfg.RedisAddr != "" {
		rdb, err := utils.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("main: redis unavailable, checkout audit disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }

			queue := asynq.NewClient(utils.QueueRedisOpt(cfg))
			defer queue.Close()
			publisher = tasks.NewQueuePublisher(queue)
		}
	}

	// Audit worker.
	if cfg.RedisAddr != "" && cfg.DatabaseURL != "" {
		mongoClient, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Warn("main: mongo unavailable, checkout audit worker disabled", zap.Error(err))
		} else {
			defer mongoClient.Disconnect(context.Background())
			checks["mongo"] = func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }

			db := mongoClient.Database(cfg.DatabaseName)
			if err := recordsRepo.EnsureIndexes(ctx, db); err != nil {
				logger.Warn("main: failed to create checkout record indexes", zap.Error(err))
			}
			worker := cron.NewAuditWorker(utils.QueueRedisOpt(cfg), recordsRepo.NewMongoCheckoutRecordRepo(db), logger)
			if err := worker.Start(); err != nil {
				logger.Error("main: failed to start audit worker", zap.Error(err))
			} else {
				defer worker.Shutdown()
			}
		}
	}

	monitor := utils.NewHealthMonitor(checks)
	go monitor.Run(ctx, time.Minute)

	// services.
	promMetrics := metrics.New()
	sessions := payments.NewStripeSessions(cfg, logger)
	checkoutService, err := checkout.NewService(cfg, sessions, publisher, logger)
	if err != nil {
		logger.Fatal("main: failed to build checkout service", zap.Error(err))
	}
	checkoutService.WithRecorder(promMetrics)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, logger)

	handlerBundle := &handlers.HandlerBundle{
		CreateCheckoutSession:     checkoutHandler.CreateCheckoutSession,
		CreateRideCheckoutSession: checkoutHandler.CreateRideCheckoutSession,
		Health:                    handlers.HealthHandler(monitor),
		Metrics:                   gin.WrapH(promMetrics.Handler()),
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Metrics(promMetrics))
	router.Use(middleware.NewRateLimiter(cfg.MaxRequestsPerMin).Middleware(logger))
	routes.RegisterRoutes(router, handlerBundle, cfg.Origins())

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Errorf("main: server failed to start: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	logger.Sugar().Info("main: server stopped gracefully")
}
