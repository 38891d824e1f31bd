package repository

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"currency-converter-api/internal/domain/model"
	"currency-converter-api/pkg/logger"
)

const (
	ecbBaseCurrency = "EUR"
	userAgent       = "currency-converter-api/0.2.0"
)

// ECBSource fetches the European Central Bank daily reference rate feed.
// The feed carries one dated table of EUR-relative rates; EUR itself is
// never listed.
type ECBSource struct {
	url        string
	httpClient *http.Client
	log        *logger.Logger
}

// ecbEnvelope mirrors the feed's nested Cube structure: an outer Cube, a
// dated Cube, then one Cube per currency.
type ecbEnvelope struct {
	Cube struct {
		Day struct {
			Time  string `xml:"time,attr"`
			Rates []struct {
				Currency string `xml:"currency,attr"`
				Rate     string `xml:"rate,attr"`
			} `xml:"Cube"`
		} `xml:"Cube"`
	} `xml:"Cube"`
}

func NewECBSource(url string, timeout time.Duration, log *logger.Logger) *ECBSource {
	return &ECBSource{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

func (e *ECBSource) FetchToday(ctx context.Context) (*model.RawRateTable, error) {
	e.log.Info("Fetching exchange rates from ECB", "url", e.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ECB feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ECB returned non-OK status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read ECB response: %w", err)
	}

	table, err := parseEnvelope(body)
	if err != nil {
		return nil, err
	}

	e.log.Info("Parsed ECB rate table", "date", table.Date, "currencies", len(table.Pairs))
	return table, nil
}

func parseEnvelope(data []byte) (*model.RawRateTable, error) {
	var envelope ecbEnvelope
	if err := xml.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse ECB XML: %w", err)
	}

	day := envelope.Cube.Day
	pairs := make([]model.RawRatePair, 0, len(day.Rates))
	for _, rate := range day.Rates {
		pairs = append(pairs, model.RawRatePair{
			Code: rate.Currency,
			Rate: rate.Rate,
		})
	}

	return &model.RawRateTable{
		Date:  day.Time,
		Base:  ecbBaseCurrency,
		Pairs: pairs,
	}, nil
}
