package model

import (
	"errors"
	"fmt"

	"currency-converter-api/pkg/utils"

	"github.com/shopspring/decimal"
)

var ErrInvalidRateTable = errors.New("invalid rate table")

// RawRatePair is one (currency, rate) entry exactly as the upstream feed
// delivered it. Rates stay strings until snapshot construction so no
// precision is lost before validation.
type RawRatePair struct {
	Code string
	Rate string
}

// RawRateTable is the unvalidated output of a rate source fetch.
type RawRateTable struct {
	Date  string
	Base  string
	Pairs []RawRatePair
}

// RateSnapshot is one day's rate table with a single base currency.
// Rates map a currency code to "1 unit of Base buys Rate units of it".
// The base currency itself is never a key in Rates. A snapshot is
// immutable once constructed; rebasing builds a new one.
type RateSnapshot struct {
	Date  string                     `json:"date"`
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// NewRateSnapshot validates a raw table and builds an immutable snapshot.
// Any malformed code, duplicate code, non-positive rate, base currency
// listed as its own key, bad date, or empty table rejects the whole table.
func NewRateSnapshot(raw *RawRateTable) (*RateSnapshot, error) {
	if _, err := utils.ParseDate(raw.Date); err != nil {
		return nil, fmt.Errorf("%w: bad date %q", ErrInvalidRateTable, raw.Date)
	}

	if !IsValidCode(raw.Base) {
		return nil, fmt.Errorf("%w: bad base currency %q", ErrInvalidRateTable, raw.Base)
	}

	if len(raw.Pairs) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrInvalidRateTable)
	}

	rates := make(map[string]decimal.Decimal, len(raw.Pairs))

	for _, pair := range raw.Pairs {
		if !IsValidCode(pair.Code) {
			return nil, fmt.Errorf("%w: bad currency code %q", ErrInvalidRateTable, pair.Code)
		}
		if pair.Code == raw.Base {
			return nil, fmt.Errorf("%w: base currency %q listed as a rate", ErrInvalidRateTable, pair.Code)
		}
		if _, exists := rates[pair.Code]; exists {
			return nil, fmt.Errorf("%w: duplicate currency code %q", ErrInvalidRateTable, pair.Code)
		}

		rate, err := decimal.NewFromString(pair.Rate)
		if err != nil {
			return nil, fmt.Errorf("%w: unparsable rate for %s: %v", ErrInvalidRateTable, pair.Code, err)
		}
		if rate.Sign() <= 0 {
			return nil, fmt.Errorf("%w: non-positive rate %s for %s", ErrInvalidRateTable, pair.Rate, pair.Code)
		}

		rates[pair.Code] = rate
	}

	return &RateSnapshot{
		Date:  raw.Date,
		Base:  raw.Base,
		Rates: rates,
	}, nil
}
