package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"anoa.com/portfoliocms/internal/bootstrap"
	"anoa.com/portfoliocms/internal/config"
	"anoa.com/portfoliocms/internal/server"
	"anoa.com/portfoliocms/pkg/database"
	"anoa.com/portfoliocms/pkg/logger"
	"anoa.com/portfoliocms/pkg/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.AppEnv)
	validator.RegisterJSONTagNames()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(database.Options{
		DSN:          cfg.DatabaseURL,
		MaxOpenConns: 25,
		MaxIdleConns: 5,
		Debug:        cfg.DBDebug,
	})
	if err != nil {
		appLogger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := bootstrap.Migrate(db); err != nil {
		appLogger.Error("migration failed", "error", err)
		os.Exit(1)
	}
	if err := bootstrap.SeedRoles(db); err != nil {
		appLogger.Error("failed to seed roles", "error", err)
		os.Exit(1)
	}
	if err := bootstrap.SeedAdminUser(db, cfg, appLogger); err != nil {
		appLogger.Error("failed to seed admin user", "error", err)
		os.Exit(1)
	}

	redisClient, err := database.ConnectRedis(ctx, cfg.RedisURL)
	if err != nil {
		// redis only backs views, rate limits and live notifications
		appLogger.Warn("redis unavailable, continuing without it", "error", err)
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	srv, err := server.NewServer(ctx, server.Options{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Logger: appLogger,
	})
	if err != nil {
		appLogger.Error("failed to build server", "error", err)
		os.Exit(1)
	}

	if err := srv.Run(ctx); err != nil {
		appLogger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	appLogger.Info("server stopped")
}
