package cache

import (
	"context"
	"sync"

	"currency-converter-api/internal/domain/model"
	"currency-converter-api/pkg/logger"
)

// MemoryCache keeps the last written snapshot in process memory. It backs
// single-instance deployments that run without redis; the durability and
// cross-instance sharing of the redis cache are lost.
type MemoryCache struct {
	mutex    sync.RWMutex
	snapshot *model.RateSnapshot
	log      *logger.Logger
}

func NewMemoryCache(log *logger.Logger) *MemoryCache {
	return &MemoryCache{
		log: log,
	}
}

func (c *MemoryCache) Write(ctx context.Context, snapshot *model.RateSnapshot) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.snapshot = snapshot
	c.log.Debug("Stored snapshot in memory cache", "date", snapshot.Date)
	return nil
}

func (c *MemoryCache) Read(ctx context.Context) (*model.RateSnapshot, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.snapshot, nil
}

func (c *MemoryCache) Ping(ctx context.Context) error {
	return nil
}
