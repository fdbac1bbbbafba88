package main

import (
	"health-records-service/internal/app/config"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViper(t *testing.T) {
	cmd := newTransformCommand(&config.DriverConfig{}, logrus.New())

	t.Run("Flag Defaults", func(t *testing.T) {
		v, err := newViper(cmd)
		require.NoError(t, err)

		ingestionConfig := new(config.IngestionConfig)
		require.NoError(t, v.Unmarshal(ingestionConfig))

		assert.Equal(t, 50, ingestionConfig.Limit)
		assert.Equal(t, config.DefaultIngestionFields, ingestionConfig.Fields)
		assert.Equal(t, "first", ingestionConfig.FirstNameField)
		assert.Equal(t, "example.com", ingestionConfig.EmailDomain)
		assert.Empty(t, ingestionConfig.UploadBucket)
	})

	t.Run("Environment Overrides", func(t *testing.T) {
		t.Setenv("INGEST_LIMIT", "7")
		t.Setenv("INGEST_FIRST_NAME_FIELD", "given")
		t.Setenv("INGEST_SEED", "42")

		v, err := newViper(cmd)
		require.NoError(t, err)

		ingestionConfig := new(config.IngestionConfig)
		require.NoError(t, v.Unmarshal(ingestionConfig))

		assert.Equal(t, 7, ingestionConfig.Limit)
		assert.Equal(t, "given", ingestionConfig.FirstNameField)
		assert.Equal(t, uint64(42), ingestionConfig.Seed)
	})

	t.Run("Flag Wins Over Environment", func(t *testing.T) {
		t.Setenv("INGEST_OUTPUT", "env.json")
		transformCmd := newTransformCommand(&config.DriverConfig{}, logrus.New())
		require.NoError(t, transformCmd.Flags().Set("output", "flag.json"))

		v, err := newViper(transformCmd)
		require.NoError(t, err)

		assert.Equal(t, "flag.json", v.GetString("output"))
	})
}
