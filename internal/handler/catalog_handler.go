package handler

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"atelier-desk/internal/client"
	"atelier-desk/internal/model"
)

// CatalogHandler exposes product variant search.
type CatalogHandler struct {
	catalog *client.CatalogClient
	logger  zerolog.Logger
}

// NewCatalogHandler creates the catalogue handler.
func NewCatalogHandler(catalog *client.CatalogClient, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// SearchVariants handles GET /api/product-variants. productName, categoryId
// and productStatus are all optional filters; no filter lists the whole
// catalogue for inventory browsing.
func (h *CatalogHandler) SearchVariants(w http.ResponseWriter, r *http.Request) {
	req := model.VariantListRequest{
		ProductName: r.URL.Query().Get("productName"),
		CategoryID:  r.URL.Query().Get("categoryId"),
	}
	if raw := r.URL.Query().Get("productStatus"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "invalid productStatus", h.logger)
			return
		}
		status := model.ProductStatus(v)
		req.Status = &status
	}
	resp, err := h.catalog.List(r.Context(), req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
