package database

import (
	"context"
	"fmt"
	"health-records-service/internal/app/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient returns nil when Redis is disabled.
func NewRedisClient(driverConfig *config.DriverConfig, log *zap.Logger) *redis.Client {
	if !driverConfig.Redis.Enabled {
		log.Info("Redis is disabled, patient cache will not be used")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	_, err := rdb.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("Could not connect to Redis", zap.Error(err))
	}
	log.Info("Successfully connected to redis")

	return rdb
}
