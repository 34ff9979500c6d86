package main

import (
	"context"
	"log"
	"time"

	"github.com/fomoscore/backend/internal/config"
	"github.com/fomoscore/backend/internal/model"
	"github.com/fomoscore/backend/internal/server"
	"github.com/fomoscore/backend/pkg/database"
	"github.com/fomoscore/backend/pkg/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog := logger.New(cfg.LogLevel, cfg.AppEnv)
	defer zlog.Sync()

	db := database.Connect()
	if err := migrate(db); err != nil {
		zlog.Fatalw("migration failed", "error", err)
	}

	redisClient := connectRedis(cfg.RedisURL)
	if redisClient == nil {
		zlog.Warn("redis unavailable, rate limiting and live updates disabled")
	}

	srv := server.NewServer(cfg, db, redisClient, zlog)

	zlog.Infow("starting server", "port", cfg.Port, "env", cfg.AppEnv)
	if err := srv.Run(":" + cfg.Port); err != nil {
		zlog.Fatalw("server exited with error", "error", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.ScoreRecord{},
		&model.WalletScore{},
	)
}

func connectRedis(redisURL string) *redis.Client {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, continuing without redis: %v", err)
		return nil
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis ping failed, continuing without redis: %v", err)
		return nil
	}

	return client
}
