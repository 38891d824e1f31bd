package ports

import (
	"context"

	"currency-converter-api/internal/domain/model"
)

// ExchangeService is the conversion request surface consumed by the HTTP
// layer. Amounts cross this boundary as decimal strings.
type ExchangeService interface {
	GetLatest(ctx context.Context, base string) (*model.RateSnapshot, error)
	Convert(ctx context.Context, from, to, amount string) (*model.ConversionResult, error)
}

// HealthReporter derives service health from snapshot freshness and
// external cache reachability.
type HealthReporter interface {
	Report(ctx context.Context) model.HealthReport
}
