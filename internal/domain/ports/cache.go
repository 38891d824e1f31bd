package ports

import (
	"context"

	"currency-converter-api/internal/domain/model"
)

// SnapshotCache is the external cache collaborator. It is a write-through
// target on refresh and a seed source at startup; the request path never
// reads from it. Read returns (nil, nil) on a miss.
type SnapshotCache interface {
	Write(ctx context.Context, snapshot *model.RateSnapshot) error
	Read(ctx context.Context) (*model.RateSnapshot, error)
	Ping(ctx context.Context) error
}
