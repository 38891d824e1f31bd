package cache

import (
	"context"
	"testing"

	"currency-converter-api/internal/domain/model"
	"currency-converter-api/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(logger.NewLogger("error"))

	require.NoError(t, c.Ping(ctx))

	// Miss before anything is written.
	snapshot, err := c.Read(ctx)
	require.NoError(t, err)
	assert.Nil(t, snapshot)

	written, err := model.NewRateSnapshot(&model.RawRateTable{
		Date: "2025-12-03",
		Base: "EUR",
		Pairs: []model.RawRatePair{
			{Code: "USD", Rate: "1.1668"},
		},
	})
	require.NoError(t, err)
	require.NoError(t, c.Write(ctx, written))

	snapshot, err = c.Read(ctx)
	require.NoError(t, err)
	assert.Same(t, written, snapshot)
}
