package config

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	Logger         *zap.Logger
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			b.Logger.Error("Failed to close Redis", zap.Error(err))
			return err
		}
		b.Logger.Info("Successfully closing Redis")
	}

	err := b.MongoDB.Disconnect(ctx)
	if err != nil {
		b.Logger.Error("Failed to close MongoDB", zap.Error(err))
		return err
	}
	b.Logger.Info("Successfully closing MongoDB")

	b.Logger.Info("Successfully closing Logger")
	// Sync on stdout/stderr fails with EINVAL on some platforms.
	_ = b.Logger.Sync()

	return nil
}
