package model

import (
	"github.com/shopspring/decimal"
)

// ConversionResult is the outcome of a pairwise conversion. Decimal
// fields marshal as quoted decimal strings, never as binary floats.
type ConversionResult struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
	Result decimal.Decimal `json:"result"`
	Rate   decimal.Decimal `json:"rate"`
	Date   string          `json:"date"`
}

// HealthReport is the service health view: readiness is derived from
// whether a snapshot has ever been installed, staleness is surfaced as
// the snapshot date and left for monitoring to judge.
type HealthReport struct {
	Ready          bool   `json:"ready"`
	CacheReachable bool   `json:"cache_reachable"`
	LastUpdateDate string `json:"last_update,omitempty"`
}
