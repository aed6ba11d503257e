package triage

import (
	"context"
	"encoding/json"
	"time"

	doctorRepo "medigo/database/repository/doctor"
	"medigo/models"
	"medigo/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const catalogueKey = "triage:catalogue"

// CatalogueCache serves the specialization catalogue from Redis, refreshing
// from the doctor store on a miss and falling back to the built-in
// catalogue when both are unavailable.
type CatalogueCache struct {
	client *redis.Client
	repo   doctorRepo.DoctorRepository
	ttl    time.Duration
}

func NewCatalogueCache(client *redis.Client, repo doctorRepo.DoctorRepository, ttl time.Duration) *CatalogueCache {
	return &CatalogueCache{client: client, repo: repo, ttl: ttl}
}

func (s *CatalogueCache) Catalogue(ctx context.Context) []models.Specialization {
	logger := utils.GetLogger()

	if s.client != nil {
		data, err := s.client.Get(ctx, catalogueKey).Result()
		if err == nil {
			var specs []models.Specialization
			if jsonErr := json.Unmarshal([]byte(data), &specs); jsonErr == nil && len(specs) > 0 {
				return specs
			}
		} else if err != redis.Nil {
			logger.Warn("catalogue cache read failed", zap.Error(err))
		}
	}

	if s.repo != nil {
		specs, err := s.repo.GetSpecializations()
		if err != nil {
			logger.Warn("catalogue store read failed", zap.Error(err))
		} else if len(specs) > 0 {
			if s.client != nil {
				if b, jsonErr := json.Marshal(specs); jsonErr == nil {
					if setErr := s.client.Set(ctx, catalogueKey, b, s.ttl).Err(); setErr != nil {
						logger.Warn("catalogue cache write failed", zap.Error(setErr))
					}
				}
			}
			return specs
		}
	}

	return DefaultCatalogue()
}
