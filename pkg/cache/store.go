package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"realestate-listings/pkg/logger"

	"github.com/go-redis/redis/v8"
)

// GenerationTTL bounds how long a generation counter outlives its last
// invalidation. It must exceed the longest read that fills the cache.
const GenerationTTL = 24 * time.Hour

// Store runs cache and lock operations against one Redis client.
type Store struct {
	client *redis.Client
}

var (
	_ CacheOperations    = (*Store)(nil)
	_ ListingOperations  = (*Store)(nil)
	_ PropertyOperations = (*Store)(nil)
	_ LockOperations     = (*Store)(nil)
)

func expirySeconds(d time.Duration) string {
	seconds := int(d.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	return strconv.Itoa(seconds)
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	start := time.Now()
	err := s.client.Ping(ctx).Err()
	recordOperationDuration("ping", start)
	if err != nil {
		incrementError("ping")
		return NewCacheError("ping", err, true)
	}
	return nil
}

// store a value in the cache with the given key and expiration time.
func (s *Store) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	start := time.Now()
	data, err := json.Marshal(value)
	if err != nil {
		incrementError("set_marshal")
		logger.GlobalLogger.Errorf("failed to marshal value for key %s: %v", key, err)
		return NewCacheError("marshal", err, false)
	}
	err = s.client.Set(ctx, key, data, expiration).Err()
	recordOperationDuration("set", start)
	if err != nil {
		incrementError("set")
		logger.GlobalLogger.Errorf("failed to set key %s: %v", key, err)
		return NewCacheError("set", err, true)
	}
	return nil
}

// retrieve a value from the cache and unmarshal it into dest. A missing key
// returns an error matched by IsMiss.
func (s *Store) Get(ctx context.Context, key string, dest interface{}) error {
	start := time.Now()
	val, err := s.client.Get(ctx, key).Bytes()
	recordOperationDuration("get", start)
	if err == redis.Nil {
		return NewCacheError("get", err, false)
	}
	if err != nil {
		incrementError("get")
		logger.GlobalLogger.Errorf("failed to get key %s: %v", key, err)
		return NewCacheError("get", err, true)
	}
	if err := json.Unmarshal(val, dest); err != nil {
		incrementError("get_unmarshal")
		logger.GlobalLogger.Errorf("failed to unmarshal value for key %s: %v", key, err)
		return NewCacheError("unmarshal", err, false)
	}
	return nil
}

// remove a key from the cache.
func (s *Store) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.client.Del(ctx, key).Err()
	recordOperationDuration("delete", start)
	if err != nil {
		incrementError("delete")
		logger.GlobalLogger.Errorf("failed to delete key %s: %v", key, err)
		return NewCacheError("delete", err, true)
	}
	return nil
}

// Generation returns the counter stored at genKey, "0" when unset. Read it
// before loading the value a later SetIfGeneration or SetListing stores.
func (s *Store) Generation(ctx context.Context, genKey string) (string, error) {
	start := time.Now()
	gen, err := s.client.Get(ctx, genKey).Result()
	recordOperationDuration("generation", start)
	if err == redis.Nil {
		return "0", nil
	}
	if err != nil {
		incrementError("generation")
		logger.GlobalLogger.Errorf("failed to read generation %s: %v", genKey, err)
		return "", NewCacheError("generation", err, true)
	}
	return gen, nil
}

// SetIfGeneration stores value unless genKey moved past gen. It reports
// whether the value was written.
func (s *Store) SetIfGeneration(ctx context.Context, key, genKey, gen string, value interface{}, expiration time.Duration) (bool, error) {
	start := time.Now()
	data, err := json.Marshal(value)
	if err != nil {
		incrementError("set_marshal")
		logger.GlobalLogger.Errorf("failed to marshal value for key %s: %v", key, err)
		return false, NewCacheError("marshal", err, false)
	}
	stored, err := setIfGenerationScript.Run(ctx, s.client, []string{key, genKey}, gen, string(data), expirySeconds(expiration)).Int()
	recordOperationDuration("set_if_generation", start)
	if err != nil {
		incrementError("set_if_generation")
		logger.GlobalLogger.Errorf("failed to set key %s: %v", key, err)
		return false, NewCacheError("set_if_generation", err, true)
	}
	return stored == 1, nil
}

// SetListing caches a listing under the same generation check as
// SetIfGeneration and registers its key with each contained property for
// invalidation.
func (s *Store) SetListing(ctx context.Context, key, genKey, gen string, value interface{}, propertyIDs []string, expiration time.Duration) (bool, error) {
	start := time.Now()
	payload, err := json.Marshal(value)
	if err != nil {
		incrementError("set_listing_marshal")
		logger.GlobalLogger.Errorf("failed to marshal listing for key %s: %v", key, err)
		return false, NewCacheError("set_listing_marshal", err, false)
	}

	args := []interface{}{gen, string(payload), expirySeconds(expiration)}
	for _, id := range propertyIDs {
		args = append(args, id)
	}

	stored, err := setListingScript.Run(ctx, s.client, []string{key, genKey}, args...).Int()
	recordOperationDuration("set_listing", start)
	if err != nil {
		incrementError("set_listing")
		logger.GlobalLogger.Errorf("failed to execute set listing script for key %s: %v", key, err)
		return false, NewCacheError("set_listing", err, true)
	}
	return stored == 1, nil
}

// invalidate the property entry and all cache keys associated with it using a Lua script.
func (s *Store) InvalidatePropertyCacheKeys(ctx context.Context, propertyID string) error {
	start := time.Now()
	err := invalidatePropertyCacheScript.Run(ctx, s.client, []string{}, propertyID, expirySeconds(GenerationTTL)).Err()
	recordOperationDuration("invalidate_cache", start)
	if err != nil {
		incrementError("invalidate_cache")
		logger.GlobalLogger.Errorf("failed to execute invalidate property cache script for property %s: %v", propertyID, err)
		return NewCacheError("invalidate_cache", err, true)
	}
	return nil
}

// InvalidateKey removes key and bumps genKey.
func (s *Store) InvalidateKey(ctx context.Context, key, genKey string) error {
	start := time.Now()
	err := invalidateKeyScript.Run(ctx, s.client, []string{key, genKey}, expirySeconds(GenerationTTL)).Err()
	recordOperationDuration("invalidate_key", start)
	if err != nil {
		incrementError("invalidate_key")
		logger.GlobalLogger.Errorf("failed to invalidate key %s: %v", key, err)
		return NewCacheError("invalidate_key", err, true)
	}
	return nil
}

// AcquireLock sets key to token unless it already exists.
func (s *Store) AcquireLock(ctx context.Context, key, token string, ttl time.Duration) (bool, error) {
	start := time.Now()
	ok, err := s.client.SetNX(ctx, key, token, ttl).Result()
	recordOperationDuration("lock_acquire", start)
	if err != nil {
		incrementError("lock_acquire")
		return false, NewCacheError("lock_acquire", err, true)
	}
	return ok, nil
}

// ReleaseLock deletes key only while it still holds token.
func (s *Store) ReleaseLock(ctx context.Context, key, token string) error {
	start := time.Now()
	err := releaseLockScript.Run(ctx, s.client, []string{key}, token).Err()
	recordOperationDuration("lock_release", start)
	if err != nil {
		incrementError("lock_release")
		return NewCacheError("lock_release", err, true)
	}
	return nil
}
