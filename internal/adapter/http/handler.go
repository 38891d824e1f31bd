package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"currency-converter-api/internal/domain/ports"
	"currency-converter-api/internal/metrics"
	"currency-converter-api/internal/service"
	"currency-converter-api/pkg/logger"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type Handler struct {
	service ports.ExchangeService
	health  ports.HealthReporter
	log     *logger.Logger
	metrics *metrics.Metrics
}

func NewHandler(service ports.ExchangeService, health ports.HealthReporter, log *logger.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		health:  health,
		log:     log,
		metrics: metrics,
	}
}

func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.sendErrorResponse(w, http.StatusNotFound, "not found")
		return
	}

	info := map[string]interface{}{
		"service": "Currency Converter API",
		"version": "0.2.0",
		"endpoints": map[string]string{
			"health":       "GET /health",
			"latest_rates": "GET /api/latest?base=<CURRENCY>",
			"convert":      "GET /api/convert?from=<FROM>&to=<TO>&amount=<AMOUNT>",
		},
	}
	h.sendSuccessResponse(w, info)
}

func (h *Handler) GetLatestRatesHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.RateRequestsTotal.Inc()

	base := r.URL.Query().Get("base")

	snapshot, err := h.service.GetLatest(r.Context(), base)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.sendSuccessResponse(w, snapshot)
}

func (h *Handler) ConvertHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.ConversionRequestsTotal.Inc()

	query := r.URL.Query()
	from := query.Get("from")
	to := query.Get("to")
	amount := query.Get("amount")

	if from == "" || to == "" || amount == "" {
		h.sendErrorResponse(w, http.StatusBadRequest, "missing required parameters: from, to, and amount")
		return
	}

	result, err := h.service.Convert(r.Context(), from, to, amount)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.sendSuccessResponse(w, result)
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	report := h.health.Report(r.Context())

	cacheStatus := "healthy"
	if !report.CacheReachable {
		cacheStatus = "unreachable"
	}

	body := map[string]interface{}{
		"status":      "ok",
		"ready":       report.Ready,
		"cache":       cacheStatus,
		"last_update": report.LastUpdateDate,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("Failed to encode health response", "error", err)
	}
}

func (h *Handler) sendSuccessResponse(w http.ResponseWriter, data interface{}) {
	response := Response{
		Success: true,
		Data:    data,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	response := Response{
		Success: false,
		Error:   message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("Failed to encode error response", "error", err)
	}
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	errorMessage := "internal server error"

	switch {
	case errors.Is(err, service.ErrNotReady):
		statusCode = http.StatusServiceUnavailable
		errorMessage = "no exchange rates available yet, please try again later"
	case errors.Is(err, service.ErrInvalidCurrency):
		statusCode = http.StatusBadRequest
		errorMessage = "invalid currency code"
	case errors.Is(err, service.ErrUnknownCurrency):
		statusCode = http.StatusNotFound
		errorMessage = "currency not found in current exchange rates"
	case errors.Is(err, service.ErrInvalidAmount):
		statusCode = http.StatusBadRequest
		errorMessage = "amount must be a non-negative decimal number"
	case errors.Is(err, service.ErrCalculation):
		statusCode = http.StatusInternalServerError
		errorMessage = "conversion calculation failed"
	}

	h.log.Error("Service error", "error", err, "status_code", statusCode)
	h.sendErrorResponse(w, statusCode, errorMessage)
}
