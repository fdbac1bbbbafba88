package logger

import (
	"health-records-service/internal/pkg/constvars"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger is used by the offline command line tools.
func NewLogrusLogger(appEnv, level string) *logrus.Logger {
	logger := logrus.New()
	switch appEnv {
	case constvars.AppEnvProduction:
		logger.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile("ingest.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			logger.SetOutput(file)
		} else {
			logger.Info("Failed to log to file, using default stderr")
		}
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}
