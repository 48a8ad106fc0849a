package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/odemir/folio/internal/services"
)

// RateHandler serves the aggregated rate table
type RateHandler struct {
	service services.RateService
	logger  *zap.Logger
}

// NewRateHandler creates a new rate handler
func NewRateHandler(service services.RateService, logger *zap.Logger) *RateHandler {
	return &RateHandler{service: service, logger: logger}
}

// HandleRates returns the current rate table.
// @Summary Get current exchange rates
// @Description Get TRY prices for the fixed symbol set; unobtainable entries are zero
// @Tags rates
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {string} string "Internal server error"
// @Router /rates [get]
func (h *RateHandler) HandleRates(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	table := h.service.Rates(r.Context())
	if err := json.NewEncoder(w).Encode(table); err != nil {
		h.logger.Error("failed to encode rate table", zap.Error(err))
		http.Error(w, "failed to load rates", http.StatusInternalServerError)
	}
}
