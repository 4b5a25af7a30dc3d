package repositories

import (
	"context"
	"fmt"
	"time"

	apperrors "realestate-listings/internal/errors"
	"realestate-listings/internal/models"
	"realestate-listings/pkg/cache"
	"realestate-listings/pkg/metrics"

	"github.com/google/uuid"
)

type propertyCache struct {
	store *cache.Store
	ttl   time.Duration
}

func NewPropertyCache(store *cache.Store, ttl time.Duration) PropertyCache {
	return &propertyCache{store: store, ttl: ttl}
}

func (c *propertyCache) GetProperty(ctx context.Context, id string) (*models.PropertyEntity, error) {
	var entity models.PropertyEntity
	err := c.store.Get(ctx, cache.PropertyKey(id), &entity)
	if cache.IsMiss(err) {
		metrics.CacheMissesTotal.Inc()
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	metrics.CacheHitsTotal.Inc()
	return &entity, nil
}

func (c *propertyCache) PropertyGeneration(ctx context.Context, id string) (string, error) {
	return c.store.Generation(ctx, cache.PropertyGenerationKey(id))
}

func (c *propertyCache) SetProperty(ctx context.Context, entity *models.PropertyEntity, generation string) (bool, error) {
	return c.store.SetIfGeneration(ctx, cache.PropertyKey(entity.ID), cache.PropertyGenerationKey(entity.ID), generation, entity, c.ttl)
}

func (c *propertyCache) GetOwnerListing(ctx context.Context, ownerID string) ([]models.PropertyEntity, bool, error) {
	var entities []models.PropertyEntity
	err := c.store.Get(ctx, cache.OwnerListingKey(ownerID), &entities)
	if cache.IsMiss(err) {
		metrics.CacheMissesTotal.Inc()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	metrics.CacheHitsTotal.Inc()
	return entities, true, nil
}

func (c *propertyCache) OwnerListingGeneration(ctx context.Context, ownerID string) (string, error) {
	return c.store.Generation(ctx, cache.OwnerListingGenerationKey(ownerID))
}

func (c *propertyCache) SetOwnerListing(ctx context.Context, ownerID, generation string, entities []models.PropertyEntity) (bool, error) {
	ids := make([]string, 0, len(entities))
	for _, e := range entities {
		ids = append(ids, e.ID)
	}
	return c.store.SetListing(ctx, cache.OwnerListingKey(ownerID), cache.OwnerListingGenerationKey(ownerID), generation, entities, ids, c.ttl)
}

func (c *propertyCache) InvalidateProperty(ctx context.Context, id string) error {
	return c.store.InvalidatePropertyCacheKeys(ctx, id)
}

func (c *propertyCache) InvalidateOwnerListing(ctx context.Context, ownerID string) error {
	return c.store.InvalidateKey(ctx, cache.OwnerListingKey(ownerID), cache.OwnerListingGenerationKey(ownerID))
}

func (c *propertyCache) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}

type propertyLocker struct {
	store *cache.Store
	ttl   time.Duration
}

// NewPropertyLocker returns a Redis-backed per-property lock. The ttl bounds
// how long a crashed holder can block other writers.
func NewPropertyLocker(store *cache.Store, ttl time.Duration) EntityLocker {
	return &propertyLocker{store: store, ttl: ttl}
}

func (l *propertyLocker) Lock(ctx context.Context, id string) (func(context.Context) error, error) {
	key := cache.PropertyLockKey(id)
	token := uuid.NewString()
	ok, err := l.store.AcquireLock(ctx, key, token, l.ttl)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("property %s: %w", id, apperrors.ErrEntityBusy)
	}
	return func(ctx context.Context) error {
		return l.store.ReleaseLock(ctx, key, token)
	}, nil
}
