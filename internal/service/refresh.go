package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"currency-converter-api/internal/domain/model"
	"currency-converter-api/internal/domain/ports"
	"currency-converter-api/internal/metrics"
	"currency-converter-api/pkg/logger"

	"github.com/robfig/cron/v3"
)

const (
	refreshResultSuccess     = "success"
	refreshResultFetchError  = "fetch_error"
	refreshResultInvalidData = "invalid_data"
	refreshResultDropped     = "dropped"
)

// RefreshCoordinator runs fetch-validate-install cycles: one immediate
// attempt at startup plus a cron schedule. A single-flight guard keeps at
// most one cycle in flight; overlapping triggers are dropped, not queued.
// Every failure leaves the previously installed snapshot untouched.
type RefreshCoordinator struct {
	source  ports.RateSource
	cache   ports.SnapshotCache
	store   *SnapshotStore
	log     *logger.Logger
	metrics *metrics.Metrics
	timeout time.Duration

	inFlight atomic.Bool
	cron     *cron.Cron
}

func NewRefreshCoordinator(
	source ports.RateSource,
	cache ports.SnapshotCache,
	store *SnapshotStore,
	timeout time.Duration,
	log *logger.Logger,
	m *metrics.Metrics,
) *RefreshCoordinator {
	return &RefreshCoordinator{
		source:  source,
		cache:   cache,
		store:   store,
		log:     log,
		metrics: m,
		timeout: timeout,
		cron:    cron.New(),
	}
}

// Start registers the refresh schedule and starts the cron runner. The
// startup attempt is triggered separately by the caller.
func (r *RefreshCoordinator) Start(schedule string) error {
	_, err := r.cron.AddFunc(schedule, func() {
		if err := r.RefreshNow(context.Background()); err != nil {
			r.log.Error("Scheduled refresh failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}

	r.cron.Start()
	r.log.Info("Refresh scheduler started", "schedule", schedule)
	return nil
}

// Stop halts the scheduler. An in-flight cycle is abandoned in place,
// which is safe because Replace is the only mutator and it is atomic.
func (r *RefreshCoordinator) Stop() {
	r.cron.Stop()
	r.log.Info("Refresh scheduler stopped")
}

// RefreshNow runs one refresh cycle. A trigger arriving while another
// cycle is in flight returns immediately without fetching.
func (r *RefreshCoordinator) RefreshNow(ctx context.Context) error {
	if !r.inFlight.CompareAndSwap(false, true) {
		r.log.Info("Refresh already in progress, trigger dropped")
		r.metrics.RefreshCyclesTotal.WithLabelValues(refreshResultDropped).Inc()
		return nil
	}
	defer r.inFlight.Store(false)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	raw, err := r.source.FetchToday(ctx)
	if err != nil {
		r.metrics.RefreshCyclesTotal.WithLabelValues(refreshResultFetchError).Inc()
		r.log.Error("Rate fetch failed, keeping current snapshot", "error", err)
		r.seedFromCache(ctx)
		return fmt.Errorf("%w: %v", ErrSourceFailure, err)
	}

	snapshot, err := model.NewRateSnapshot(raw)
	if err != nil {
		r.metrics.RefreshCyclesTotal.WithLabelValues(refreshResultInvalidData).Inc()
		r.log.Error("Fetched rate table rejected, keeping current snapshot", "error", err)
		r.seedFromCache(ctx)
		return fmt.Errorf("%w: %v", ErrSourceFailure, err)
	}

	r.store.Replace(snapshot)
	r.metrics.RefreshCyclesTotal.WithLabelValues(refreshResultSuccess).Inc()
	r.metrics.LastRefreshTimestamp.SetToCurrentTime()
	r.log.Info("Installed rate snapshot", "date", snapshot.Date, "base", snapshot.Base, "currencies", len(snapshot.Rates))

	// Write-through is best effort: serving fresh rates from memory beats
	// rolling back over a cache outage.
	if err := r.cache.Write(ctx, snapshot); err != nil {
		r.metrics.CacheWriteFailuresTotal.Inc()
		r.log.Warn("Cache write-through failed", "error", err)
	}

	return nil
}

// seedFromCache installs the last cached snapshot after a failed cycle,
// but only while the store is still empty. A restarted instance can then
// serve the last published rates until the source recovers. The request
// path itself never reads the cache.
func (r *RefreshCoordinator) seedFromCache(ctx context.Context) {
	if _, err := r.store.Current(); err == nil {
		return
	}

	snapshot, err := r.cache.Read(ctx)
	if err != nil {
		r.log.Warn("Cache seed read failed", "error", err)
		return
	}
	if snapshot == nil {
		r.log.Warn("No cached snapshot available to seed from")
		return
	}

	r.store.Replace(snapshot)
	r.log.Info("Installed cached snapshot while source is unavailable", "date", snapshot.Date, "base", snapshot.Base)
}
