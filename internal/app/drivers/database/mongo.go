package database

import (
	"context"
	"health-records-service/internal/app/config"
	"net"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func NewMongoDB(driverConfig *config.DriverConfig, log *zap.Logger) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbOptions := options.Client().ApplyURI(buildMongoURI(driverConfig.MongoDB))
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		log.Fatal("Failed to connect to mongo database", zap.Error(err))
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal("Failed to ping or test the connection to mongo database", zap.Error(err))
	}
	log.Info("Successfully connected to mongo database",
		zap.String("host", driverConfig.MongoDB.Host),
		zap.String("db_name", driverConfig.MongoDB.DbName),
	)
	return client
}

func buildMongoURI(mongoConfig config.MongoDB) string {
	if mongoConfig.URI != "" {
		return mongoConfig.URI
	}
	uri := url.URL{
		Scheme: "mongodb",
		Host:   net.JoinHostPort(mongoConfig.Host, mongoConfig.Port),
	}
	if mongoConfig.Username != "" {
		uri.User = url.UserPassword(mongoConfig.Username, mongoConfig.Password)
	}
	return uri.String()
}
