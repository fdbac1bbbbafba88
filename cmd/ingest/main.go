package main

import (
	"context"
	"health-records-service/internal/app/config"
	"health-records-service/internal/app/drivers/logger"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "INGEST"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(internalConfig.App.Env, driverConfig.Logger.Level)

	rootCmd := &cobra.Command{
		Use:           "ingest",
		Short:         "Turn a CSV patient export into JSON documents and load them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		newTransformCommand(driverConfig, log),
		newLoadCommand(driverConfig, internalConfig, log),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		log.WithError(err).Error("ingest failed")
		stop()
		os.Exit(1)
	}
}

// newViper binds the command's flags so each can also be given as an
// INGEST_<FLAG> environment variable, dashes replaced by underscores.
func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return nil, err
	}
	return v, nil
}

