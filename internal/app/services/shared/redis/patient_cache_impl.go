package redis

import (
	"context"
	"fmt"
	"health-records-service/internal/app/contracts"
	"health-records-service/internal/app/models"
	"health-records-service/internal/pkg/constvars"
	"health-records-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type patientCache struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

func NewPatientCache(redisRepository contracts.RedisRepository, ttl time.Duration) contracts.PatientCache {
	return &patientCache{
		RedisRepository: redisRepository,
		TTL:             ttl,
	}
}

func (c *patientCache) Get(ctx context.Context, patientID string) (models.Document, error) {
	data, err := c.RedisRepository.Get(ctx, patientKey(patientID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	var patient models.Document
	err = json.Unmarshal([]byte(data), &patient)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return patient, nil
}

func (c *patientCache) Set(ctx context.Context, patientID string, patient models.Document) error {
	return c.RedisRepository.Set(ctx, patientKey(patientID), patient, c.TTL)
}

func (c *patientCache) Delete(ctx context.Context, patientIDs ...string) error {
	keys := make([]string, len(patientIDs))
	for i, patientID := range patientIDs {
		keys[i] = patientKey(patientID)
	}
	return c.RedisRepository.Delete(ctx, keys...)
}

func patientKey(patientID string) string {
	return fmt.Sprintf(constvars.RedisKeyPatientFormat, patientID)
}

// noopPatientCache is used when Redis is disabled. Every Get is a miss.
type noopPatientCache struct{}

func NewNoopPatientCache() contracts.PatientCache {
	return noopPatientCache{}
}

func (noopPatientCache) Get(ctx context.Context, patientID string) (models.Document, error) {
	return nil, nil
}

func (noopPatientCache) Set(ctx context.Context, patientID string, patient models.Document) error {
	return nil
}

func (noopPatientCache) Delete(ctx context.Context, patientIDs ...string) error {
	return nil
}
