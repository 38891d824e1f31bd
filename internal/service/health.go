package service

import (
	"context"

	"currency-converter-api/internal/domain/model"
	"currency-converter-api/internal/domain/ports"
)

// HealthReporter derives health from the snapshot store and the external
// cache. It reports staleness as data (the snapshot date); whether old
// data is an error is monitoring policy, not decided here.
type HealthReporter struct {
	store *SnapshotStore
	cache ports.SnapshotCache
}

func NewHealthReporter(store *SnapshotStore, cache ports.SnapshotCache) *HealthReporter {
	return &HealthReporter{
		store: store,
		cache: cache,
	}
}

func (h *HealthReporter) Report(ctx context.Context) model.HealthReport {
	report := model.HealthReport{
		CacheReachable: h.cache.Ping(ctx) == nil,
	}

	if snapshot, err := h.store.Current(); err == nil {
		report.Ready = true
		report.LastUpdateDate = snapshot.Date
	}

	return report
}
