package service

import (
	"context"
	"testing"

	"currency-converter-api/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExchangeService(t *testing.T, ready bool) *ExchangeService {
	t.Helper()

	store := NewSnapshotStore()
	if ready {
		store.Replace(testSnapshot(t))
	}
	return NewExchangeService(store, logger.NewLogger("error"))
}

func TestExchangeService_GetLatest(t *testing.T) {
	svc := newTestExchangeService(t, true)
	ctx := context.Background()

	snapshot, err := svc.GetLatest(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "EUR", snapshot.Base)

	rebased, err := svc.GetLatest(ctx, "usd")
	require.NoError(t, err)
	assert.Equal(t, "USD", rebased.Base)
	assert.NotContains(t, rebased.Rates, "USD")
	assert.Contains(t, rebased.Rates, "EUR")
}

func TestExchangeService_GetLatest_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := newTestExchangeService(t, false).GetLatest(ctx, "")
	assert.ErrorIs(t, err, ErrNotReady)

	svc := newTestExchangeService(t, true)

	_, err = svc.GetLatest(ctx, "EURO")
	assert.ErrorIs(t, err, ErrInvalidCurrency)

	_, err = svc.GetLatest(ctx, "XXX")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestExchangeService_Convert(t *testing.T) {
	svc := newTestExchangeService(t, true)

	result, err := svc.Convert(context.Background(), "usd", "jpy", "100")
	require.NoError(t, err)

	assert.Equal(t, "USD", result.From)
	assert.Equal(t, "JPY", result.To)
	assert.Equal(t, "2025-12-03", result.Date)
	assert.Equal(t, "100", result.Amount.String())
	assert.Equal(t, "15536.51", result.Result.Round(2).String())
}

func TestExchangeService_Convert_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := newTestExchangeService(t, false).Convert(ctx, "USD", "JPY", "100")
	assert.ErrorIs(t, err, ErrNotReady)

	svc := newTestExchangeService(t, true)

	testCases := []struct {
		name    string
		from    string
		to      string
		amount  string
		wantErr error
	}{
		{"malformed from", "US", "JPY", "100", ErrInvalidCurrency},
		{"malformed to", "USD", "YEN2", "100", ErrInvalidCurrency},
		{"unknown currency", "USD", "XXX", "100", ErrUnknownCurrency},
		{"unparsable amount", "USD", "JPY", "ten", ErrInvalidAmount},
		{"negative amount", "USD", "JPY", "-5", ErrInvalidAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Convert(ctx, tc.from, tc.to, tc.amount)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
