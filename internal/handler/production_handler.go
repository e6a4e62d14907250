package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"atelier-desk/internal/client"
	"atelier-desk/internal/model"
)

// ProductionHandler exposes the sewing queue and sewn-quantity reporting.
type ProductionHandler struct {
	production *client.ProductionClient
	logger     zerolog.Logger
}

// NewProductionHandler creates the production handler.
func NewProductionHandler(production *client.ProductionClient, logger zerolog.Logger) *ProductionHandler {
	return &ProductionHandler{
		production: production,
		logger:     logger.With().Str("handler", "production").Logger(),
	}
}

// SewingQueue handles GET /api/sewing-queue.
func (h *ProductionHandler) SewingQueue(w http.ResponseWriter, r *http.Request) {
	resp, err := h.production.SewingQueue(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// SubmitSewedReport handles POST /api/sewing-queue/reports.
func (h *ProductionHandler) SubmitSewedReport(w http.ResponseWriter, r *http.Request) {
	var cmd model.SubmitSewedReport
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	if cmd.ProductVariantID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "productVariantId is required", h.logger)
		return
	}
	if cmd.ActualSewedQuantity < 1 {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidQuantity, "actualSewedQuantity must be at least 1", h.logger)
		return
	}
	ok, err := h.production.SubmitSewedReport(r.Context(), cmd)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"recorded": ok})
}
