package service

import (
	"fmt"

	"currency-converter-api/internal/domain/model"

	"github.com/shopspring/decimal"
)

// Rebase recomputes a snapshot's table so newBase becomes the implicit
// 1-unit reference. The returned snapshot never contains newBase as a key;
// the old base is inserted with rate 1/r. The input snapshot is not touched.
func Rebase(s *model.RateSnapshot, newBase string) (*model.RateSnapshot, error) {
	if newBase == s.Base {
		return s, nil
	}

	baseRate, ok := s.Rates[newBase]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCurrency, newBase)
	}
	// Zero rates are rejected at ingestion; this guards the invariant
	// because decimal division panics on a zero divisor.
	if baseRate.IsZero() {
		return nil, fmt.Errorf("%w: zero rate for %s", ErrCalculation, newBase)
	}

	rates := make(map[string]decimal.Decimal, len(s.Rates))
	rates[s.Base] = decimal.NewFromInt(1).Div(baseRate)

	for code, rate := range s.Rates {
		if code == newBase {
			continue
		}
		rates[code] = rate.Div(baseRate)
	}

	return &model.RateSnapshot{
		Date:  s.Date,
		Base:  newBase,
		Rates: rates,
	}, nil
}

// Convert computes (result, effectiveRate) for amount units of from in
// terms of to, directly from the base-relative rates. It never builds an
// intermediate rebased table.
func Convert(s *model.RateSnapshot, from, to string, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	if amount.Sign() < 0 {
		return decimal.Zero, decimal.Zero, ErrInvalidAmount
	}

	one := decimal.NewFromInt(1)

	// Same-currency conversion short-circuits before any table lookup.
	if from == to {
		return amount, one, nil
	}

	fromRate := one
	if from != s.Base {
		r, ok := s.Rates[from]
		if !ok {
			return decimal.Zero, decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownCurrency, from)
		}
		fromRate = r
	}

	toRate := one
	if to != s.Base {
		r, ok := s.Rates[to]
		if !ok {
			return decimal.Zero, decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownCurrency, to)
		}
		toRate = r
	}

	if fromRate.IsZero() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: zero rate for %s", ErrCalculation, from)
	}

	rate := toRate.Div(fromRate)
	result := amount.Mul(rate)

	return result, rate, nil
}
