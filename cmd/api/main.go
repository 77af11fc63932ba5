package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	redislib "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Pravhesh/GrievAI/internal/adapter/client"
	"github.com/Pravhesh/GrievAI/internal/adapter/forwarder"
	"github.com/Pravhesh/GrievAI/internal/adapter/http/router"
	"github.com/Pravhesh/GrievAI/internal/domain/category"
	"github.com/Pravhesh/GrievAI/internal/infrastructure/cache"
	"github.com/Pravhesh/GrievAI/internal/infrastructure/config"
	"github.com/Pravhesh/GrievAI/internal/infrastructure/executor"
	"github.com/Pravhesh/GrievAI/internal/infrastructure/logger"
	"github.com/Pravhesh/GrievAI/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
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
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Classification result cache: redis when configured and reachable,
	// in-process memory otherwise.
	var store cache.Store
	var redisClient *redislib.Client
	if cfg.Cache.Backend == "redis" {
		redisClient, err = cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warn("Failed to connect to Redis, falling back to memory cache", zap.Error(err))
		} else {
			log.Info("Connected to Redis")
			store = cache.NewRedisStore(redisClient, cfg.Cache.TTL)
		}
	}
	if store == nil {
		store = cache.NewMemoryStore(cfg.Cache.Size, cfg.Cache.TTL)
		log.Info("Using in-memory classification cache",
			zap.Int("size", cfg.Cache.Size),
			zap.Duration("ttl", cfg.Cache.TTL))
	}

	// Zero-shot classifiers. The HTTP client timeout sits above the
	// executor timeout so the executor is the one that fires first.
	hfClient := client.NewHFClient(cfg.Classifier.APIURL, cfg.Classifier.APIKey, cfg.Classifier.Timeout+10*time.Second)
	textClassifier := client.NewTextClassifier(hfClient, cfg.Classifier.TextModel)
	imageClassifier := client.NewImageClassifier(hfClient, cfg.Classifier.ImageModel)

	classifyUC := usecase.NewClassifyUsecase(
		textClassifier,
		imageClassifier,
		category.NewDefaultMapping(),
		store,
		executor.NewPool(cfg.Classifier.Workers),
		cfg.Classifier.Timeout,
		log,
	)

	// Outbound forwarders
	notifier := forwarder.NewNotifier(&cfg.Notify, log)
	var rpcForwarder *forwarder.RPCForwarder
	if cfg.RPC.UpstreamURL != "" {
		rpcForwarder = forwarder.NewRPCForwarder(cfg.RPC.UpstreamURL, cfg.RPC.Timeout)
		log.Info("RPC forwarding enabled", zap.String("upstream", cfg.RPC.UpstreamURL))
	} else {
		log.Info("RPC forwarding disabled: no upstream configured")
	}

	// Setup router
	r := router.Setup(router.Deps{
		ClassifyUC:     classifyUC,
		Notifier:       notifier,
		RPCForwarder:   rpcForwarder,
		RedisClient:    redisClient,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         log,
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Close Redis connection
	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Info("Server exited")
	return nil
}
