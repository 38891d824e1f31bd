package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"currency-converter-api/internal/domain/model"
	"currency-converter-api/pkg/logger"

	"github.com/shopspring/decimal"
)

var (
	ErrNotReady        = errors.New("no exchange rates available yet")
	ErrInvalidCurrency = errors.New("invalid currency code")
	ErrUnknownCurrency = errors.New("unknown currency")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrCalculation     = errors.New("calculation error")
	ErrSourceFailure   = errors.New("rate source failure")
)

// ExchangeService is the request-path facade over the snapshot store:
// latest rates (optionally rebased) and pairwise conversion. It only ever
// reads the store.
type ExchangeService struct {
	store *SnapshotStore
	log   *logger.Logger
}

func NewExchangeService(store *SnapshotStore, log *logger.Logger) *ExchangeService {
	return &ExchangeService{
		store: store,
		log:   log,
	}
}

// GetLatest returns the current snapshot, rebased to base when one is
// given. An empty base returns the snapshot as-is.
func (s *ExchangeService) GetLatest(ctx context.Context, base string) (*model.RateSnapshot, error) {
	snapshot, err := s.store.Current()
	if err != nil {
		return nil, err
	}

	if base == "" {
		return snapshot, nil
	}

	base = strings.ToUpper(base)
	if !model.IsValidCode(base) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCurrency, base)
	}

	return Rebase(snapshot, base)
}

// Convert parses amount as an exact decimal string and converts it from
// one currency to another against the current snapshot.
func (s *ExchangeService) Convert(ctx context.Context, from, to, amount string) (*model.ConversionResult, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	if !model.IsValidCode(from) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCurrency, from)
	}
	if !model.IsValidCode(to) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCurrency, to)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	snapshot, err := s.store.Current()
	if err != nil {
		return nil, err
	}

	result, rate, err := Convert(snapshot, from, to, value)
	if err != nil {
		return nil, err
	}

	return &model.ConversionResult{
		From:   from,
		To:     to,
		Amount: value,
		Result: result,
		Rate:   rate,
		Date:   snapshot.Date,
	}, nil
}
