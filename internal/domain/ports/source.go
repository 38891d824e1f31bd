package ports

import (
	"context"

	"currency-converter-api/internal/domain/model"
)

// RateSource fetches today's raw rate table from the upstream feed.
// Implementations must honor ctx cancellation; the caller bounds every
// fetch with a timeout.
type RateSource interface {
	FetchToday(ctx context.Context) (*model.RawRateTable, error)
}
