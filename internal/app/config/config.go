package config

import (
	"health-records-service/internal/pkg/constvars"
	"health-records-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:      utils.GetEnvString("MONGODB_URI", ""),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "health-records"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Enabled:  utils.GetEnvBool("REDIS_ENABLED", false),
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                     utils.GetEnvString("APP_PORT", ":5000"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "UTC"),
			TemplatePath:             utils.GetEnvString("APP_TEMPLATE_PATH", ""),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUESTS", 0),
			RequestTimeoutInSeconds:  utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
		},
		Auth: Auth{
			PasswordScheme:       utils.GetEnvString("AUTH_PASSWORD_SCHEME", constvars.PasswordSchemePlaintext),
			LoginMaxAttempts:     utils.GetEnvInt("AUTH_LOGIN_MAX_ATTEMPTS", 0),
			LoginWindowInSeconds: utils.GetEnvInt("AUTH_LOGIN_WINDOW_IN_SECONDS", 60),
			LoginBlockInSeconds:  utils.GetEnvInt("AUTH_LOGIN_BLOCK_IN_SECONDS", 300),
		},
		Cache: Cache{
			PatientTTLInSeconds: utils.GetEnvInt("REDIS_PATIENT_CACHE_TTL_IN_SECONDS", 300),
		},
	}
}
