package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"atelier-desk/internal/client"
	"atelier-desk/internal/model"
)

// OrdersHandler exposes the order listing and manual status operations.
type OrdersHandler struct {
	orders *client.OrdersClient
	logger zerolog.Logger
}

// NewOrdersHandler creates the orders handler.
func NewOrdersHandler(orders *client.OrdersClient, logger zerolog.Logger) *OrdersHandler {
	return &OrdersHandler{
		orders: orders,
		logger: logger.With().Str("handler", "orders").Logger(),
	}
}

// List handles GET /api/orders.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	req := model.OrderListRequest{Search: r.URL.Query().Get("search")}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			req.Limit = v
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			req.Offset = v
		}
	}
	resp, err := h.orders.List(r.Context(), req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/orders/{id}.
func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	order, err := h.orders.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// NextManualStatuses handles GET /api/orders/manual-status/next?current=.
func (h *OrdersHandler) NextManualStatuses(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("current")
	current, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "invalid current status", h.logger)
		return
	}
	statuses, err := h.orders.NextManualStatuses(r.Context(), model.OrderManualStatus(current))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, statuses)
}

// SetManualStatus handles POST /api/orders/manual-status.
func (h *OrdersHandler) SetManualStatus(w http.ResponseWriter, r *http.Request) {
	var req model.SetManualOrderStatus
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	if req.OrderID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "orderId is required", h.logger)
		return
	}
	ok, err := h.orders.SetManualStatus(r.Context(), req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": ok})
}
