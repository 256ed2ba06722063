package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dan9191/realty-service/internal/cache"
	"github.com/Dan9191/realty-service/internal/config"
	"github.com/Dan9191/realty-service/internal/handler"
	"github.com/Dan9191/realty-service/internal/integrations/rates"
	"github.com/Dan9191/realty-service/internal/metrics"
	"github.com/Dan9191/realty-service/internal/repository"
	"github.com/Dan9191/realty-service/internal/scheduler"
	"github.com/Dan9191/realty-service/internal/service"
	"github.com/Dan9191/realty-service/internal/utils/email"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}
	if err := repository.RunMigrations(db, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Rate cache
	var rateCache cache.Cache = cache.NewMemoryCache()
	if cfg.RedisAddr != "" {
		rc := cache.NewRedisCache(cfg.RedisAddr)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rc.Ping(ctx)
		cancel()
		if err != nil {
			logger.Warnf("Redis unavailable at %s, caching rates in memory: %v", cfg.RedisAddr, err)
		} else {
			defer rc.Close()
			rateCache = rc
		}
	}

	// Initialize layers
	collector := metrics.NewCollector()
	repo := repository.NewRepository(db)
	rateClient := rates.NewClient(cfg, logger)
	sender := email.NewSender(cfg, logger)
	svc := service.NewService(repo, rateClient, rateCache, sender, collector, logger, cfg)
	h := handler.NewHandler(svc, logger)

	sched, err := scheduler.NewScheduler(cfg, svc, logger)
	if err != nil {
		logger.Fatalf("Failed to create scheduler: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      h.Router(cfg, collector),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
}
