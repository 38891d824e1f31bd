package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRawTable() *RawRateTable {
	return &RawRateTable{
		Date: "2025-12-03",
		Base: "EUR",
		Pairs: []RawRatePair{
			{Code: "USD", Rate: "1.1668"},
			{Code: "JPY", Rate: "181.28"},
		},
	}
}

func TestNewRateSnapshot(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*RawRateTable)
		wantErr bool
	}{
		{
			name:   "valid table",
			mutate: func(raw *RawRateTable) {},
		},
		{
			name:    "bad date",
			mutate:  func(raw *RawRateTable) { raw.Date = "03-12-2025" },
			wantErr: true,
		},
		{
			name:    "bad base code",
			mutate:  func(raw *RawRateTable) { raw.Base = "EURO" },
			wantErr: true,
		},
		{
			name:    "empty table",
			mutate:  func(raw *RawRateTable) { raw.Pairs = nil },
			wantErr: true,
		},
		{
			name:    "lowercase currency code",
			mutate:  func(raw *RawRateTable) { raw.Pairs[0].Code = "usd" },
			wantErr: true,
		},
		{
			name:    "duplicate currency code",
			mutate:  func(raw *RawRateTable) { raw.Pairs[1] = RawRatePair{Code: "USD", Rate: "1.2"} },
			wantErr: true,
		},
		{
			name:    "zero rate",
			mutate:  func(raw *RawRateTable) { raw.Pairs[0].Rate = "0" },
			wantErr: true,
		},
		{
			name:    "negative rate",
			mutate:  func(raw *RawRateTable) { raw.Pairs[0].Rate = "-1.1668" },
			wantErr: true,
		},
		{
			name:    "unparsable rate",
			mutate:  func(raw *RawRateTable) { raw.Pairs[0].Rate = "1,1668" },
			wantErr: true,
		},
		{
			name: "base listed as a rate",
			mutate: func(raw *RawRateTable) {
				raw.Pairs = append(raw.Pairs, RawRatePair{Code: "EUR", Rate: "1"})
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw := validRawTable()
			tc.mutate(raw)

			snapshot, err := NewRateSnapshot(raw)

			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidRateTable)
				assert.Nil(t, snapshot)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "2025-12-03", snapshot.Date)
			assert.Equal(t, "EUR", snapshot.Base)
			assert.Len(t, snapshot.Rates, 2)
			assert.True(t, snapshot.Rates["USD"].Equal(decimal.RequireFromString("1.1668")))
			assert.NotContains(t, snapshot.Rates, "EUR")
		})
	}
}

func TestIsValidCode(t *testing.T) {
	assert.True(t, IsValidCode("USD"))
	assert.False(t, IsValidCode("usd"))
	assert.False(t, IsValidCode("US"))
	assert.False(t, IsValidCode("USDT"))
	assert.False(t, IsValidCode("U5D"))
	assert.False(t, IsValidCode(""))
}
