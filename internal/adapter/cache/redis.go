package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"currency-converter-api/internal/domain/model"
	"currency-converter-api/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	ratesKey = "rates:latest"
	dateKey  = "rates:date"
)

// RedisCache stores the latest snapshot as a JSON blob in Redis for
// cross-instance sharing and warm restarts. Entries never expire; each
// refresh overwrites them.
type RedisCache struct {
	client *redis.Client
	prefix string
	log    *logger.Logger
}

func NewRedisCache(addr, password string, db int, prefix string, log *logger.Logger) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisCache{
		client: client,
		prefix: prefix,
		log:    log,
	}
}

func (c *RedisCache) key(key string) string {
	return c.prefix + key
}

func (c *RedisCache) Write(ctx context.Context, snapshot *model.RateSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := c.client.Set(ctx, c.key(ratesKey), data, 0).Err(); err != nil {
		return err
	}
	if err := c.client.Set(ctx, c.key(dateKey), snapshot.Date, 0).Err(); err != nil {
		return err
	}

	c.log.Debug("Stored snapshot in redis", "date", snapshot.Date)
	return nil
}

func (c *RedisCache) Read(ctx context.Context) (*model.RateSnapshot, error) {
	data, err := c.client.Get(ctx, c.key(ratesKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.log.Debug("No snapshot in redis")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var snapshot model.RateSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached snapshot: %w", err)
	}

	c.log.Debug("Read snapshot from redis", "date", snapshot.Date)
	return &snapshot, nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
