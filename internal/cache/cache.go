// FilePath: internal/cache/cache.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	nuts "github.com/vaudience/go-nuts"

	"github.com/verdantiot/soilhub/internal/config"
	"github.com/verdantiot/soilhub/internal/models"
)

// ReadingCache keeps the most recent moisture record per sensor (and
// overall) in Redis so GET /latest does not hit the record store on every
// dashboard poll. Records are immutable, so entries are only ever
// overwritten on ingest; a cache failure is logged and treated as a miss.
type ReadingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and verifies the connection.
func New(cfg config.RedisConfig) (*ReadingCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}

	nuts.L.Infof("[ReadingCache] Connected to %s:%d/%d", cfg.Host, cfg.Port, cfg.DB)
	return &ReadingCache{client: client, ttl: cfg.TTL}, nil
}

func (c *ReadingCache) Close() error {
	return c.client.Close()
}

// GetLatest returns the cached latest record for the given filter, or
// (nil, false) on a miss.
func (c *ReadingCache) GetLatest(ctx context.Context, sensorID *int) (*models.MoistureRecord, bool) {
	data, err := c.client.Get(ctx, latestKey(sensorID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			nuts.L.Warnf("[ReadingCache] Get failed: %v", err)
		}
		return nil, false
	}

	record := &models.MoistureRecord{}
	if err := json.Unmarshal(data, record); err != nil {
		nuts.L.Warnf("[ReadingCache] Failed to decode cached record: %v", err)
		return nil, false
	}
	return record, true
}

// SetLatest stores the freshly ingested record under the overall key and,
// when the record carries a sensor identity, the per-sensor key.
func (c *ReadingCache) SetLatest(ctx context.Context, record *models.MoistureRecord) {
	data, err := json.Marshal(record)
	if err != nil {
		nuts.L.Warnf("[ReadingCache] Failed to encode record: %v", err)
		return
	}

	keys := []string{latestKey(nil)}
	if record.SensorID != 0 {
		keys = append(keys, latestKey(&record.SensorID))
	}
	for _, key := range keys {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			nuts.L.Warnf("[ReadingCache] Set %s failed: %v", key, err)
		}
	}
}

func latestKey(sensorID *int) string {
	if sensorID == nil {
		return "soilhub:latest:all"
	}
	return fmt.Sprintf("soilhub:latest:%d", *sensorID)
}
