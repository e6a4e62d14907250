package handler

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"atelier-desk/internal/client"
	"atelier-desk/internal/model"
)

// CarrierHandler exposes carrier directory lookups and sync operations.
type CarrierHandler struct {
	carrier *client.CarrierClient
	logger  zerolog.Logger
}

// NewCarrierHandler creates the carrier handler.
func NewCarrierHandler(carrier *client.CarrierClient, logger zerolog.Logger) *CarrierHandler {
	return &CarrierHandler{
		carrier: carrier,
		logger:  logger.With().Str("handler", "carrier").Logger(),
	}
}

// SearchCities handles GET /api/carrier/cities?name=.
func (h *CarrierHandler) SearchCities(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "name is required", h.logger)
		return
	}
	cities, err := h.carrier.SearchCities(r.Context(), name)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, cities)
}

// SearchWarehouses handles GET /api/carrier/warehouses?cityRef=&search=.
func (h *CarrierHandler) SearchWarehouses(w http.ResponseWriter, r *http.Request) {
	cityRef := r.URL.Query().Get("cityRef")
	if cityRef == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "cityRef is required", h.logger)
		return
	}
	warehouses, err := h.carrier.SearchWarehouses(r.Context(), cityRef, r.URL.Query().Get("search"))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, warehouses)
}

// SenderContacts handles GET /api/carrier/sender/contacts.
func (h *CarrierHandler) SenderContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.carrier.SenderContactPersons(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

// SyncStatus handles GET /api/carrier/sync/status.
func (h *CarrierHandler) SyncStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.carrier.SyncStatus(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// TriggerSync handles POST /api/carrier/sync/trigger.
func (h *CarrierHandler) TriggerSync(w http.ResponseWriter, r *http.Request) {
	if err := h.carrier.TriggerSync(r.Context()); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// SyncHistory handles GET /api/carrier/sync/history?limit=.
func (h *CarrierHandler) SyncHistory(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "invalid limit", h.logger)
			return
		}
		limit = parsed
	}
	records, err := h.carrier.SyncHistory(r.Context(), limit)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, records)
}
