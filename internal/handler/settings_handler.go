package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"atelier-desk/internal/client"
	"atelier-desk/internal/model"
)

// SettingsHandler exposes the per-user carrier settings CRUD.
type SettingsHandler struct {
	settings *client.SettingsClient
	logger   zerolog.Logger
}

// NewSettingsHandler creates the settings handler.
func NewSettingsHandler(settings *client.SettingsClient, logger zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{
		settings: settings,
		logger:   logger.With().Str("handler", "settings").Logger(),
	}
}

// Get handles GET /api/user-settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// Create handles POST /api/user-settings.
func (h *SettingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd model.AddUserSettings
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	ok, err := h.settings.Create(r.Context(), cmd)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]bool{"created": ok})
}

// Update handles PUT /api/user-settings.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var cmd model.UpdateUserSettings
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	if cmd.ID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "id is required", h.logger)
		return
	}
	ok, err := h.settings.Update(r.Context(), cmd)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": ok})
}

// Delete handles DELETE /api/user-settings/{id}.
func (h *SettingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ok, err := h.settings.Delete(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": ok})
}
