package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"atelier-desk/internal/client"
	"atelier-desk/internal/model"
)

// InventoryHandler exposes catalogue management: category, color, size and
// measurement-type dictionaries plus product, variant and photo CRUD.
type InventoryHandler struct {
	inventory *client.InventoryClient
	logger    zerolog.Logger
}

// NewInventoryHandler creates the inventory handler.
func NewInventoryHandler(inventory *client.InventoryClient, logger zerolog.Logger) *InventoryHandler {
	return &InventoryHandler{
		inventory: inventory,
		logger:    logger.With().Str("handler", "inventory").Logger(),
	}
}

// ListCategories handles GET /api/categories.
func (h *InventoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	resp, err := h.inventory.Categories(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListColors handles GET /api/colors.
func (h *InventoryHandler) ListColors(w http.ResponseWriter, r *http.Request) {
	resp, err := h.inventory.Colors(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddColor handles POST /api/colors.
func (h *InventoryHandler) AddColor(w http.ResponseWriter, r *http.Request) {
	var cmd model.AddColor
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	if cmd.Name == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "name is required", h.logger)
		return
	}
	color, err := h.inventory.AddColor(r.Context(), cmd)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, color)
}

// UpdateColor handles PUT /api/colors.
func (h *InventoryHandler) UpdateColor(w http.ResponseWriter, r *http.Request) {
	var cmd model.UpdateColor
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	if cmd.ID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "id is required", h.logger)
		return
	}
	color, err := h.inventory.UpdateColor(r.Context(), cmd)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, color)
}

// ListSizes handles GET /api/sizes.
func (h *InventoryHandler) ListSizes(w http.ResponseWriter, r *http.Request) {
	resp, err := h.inventory.Sizes(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddSize handles POST /api/sizes.
func (h *InventoryHandler) AddSize(w http.ResponseWriter, r *http.Request) {
	var cmd model.AddSize
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	if cmd.Name == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "name is required", h.logger)
		return
	}
	size, err := h.inventory.AddSize(r.Context(), cmd)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, size)
}

// ListMeasurementTypes handles GET /api/measurement-types.
func (h *InventoryHandler) ListMeasurementTypes(w http.ResponseWriter, r *http.Request) {
	resp, err := h.inventory.MeasurementTypes(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListProducts handles GET /api/products.
func (h *InventoryHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	resp, err := h.inventory.Products(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddProduct handles POST /api/products.
func (h *InventoryHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var cmd model.AddProduct
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	if cmd.Name == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "name is required", h.logger)
		return
	}
	if cmd.CategoryID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "categoryId is required", h.logger)
		return
	}
	product, err := h.inventory.AddProduct(r.Context(), cmd)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/products.
func (h *InventoryHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var cmd model.UpdateProduct
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	if cmd.ID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "id is required", h.logger)
		return
	}
	product, err := h.inventory.UpdateProduct(r.Context(), cmd)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// AddVariant handles POST /api/product-variants.
func (h *InventoryHandler) AddVariant(w http.ResponseWriter, r *http.Request) {
	var cmd model.AddProductVariant
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	if cmd.ProductID == "" || cmd.SizeID == "" || cmd.ColorID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "productId, sizeId and colorId are required", h.logger)
		return
	}
	variant, err := h.inventory.AddVariant(r.Context(), cmd)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, variant)
}

// UpdateVariant handles PUT /api/product-variants.
func (h *InventoryHandler) UpdateVariant(w http.ResponseWriter, r *http.Request) {
	var cmd model.UpdateProductVariant
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	if cmd.ID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "id is required", h.logger)
		return
	}
	variant, err := h.inventory.UpdateVariant(r.Context(), cmd)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, variant)
}

// ListPhotos handles GET /api/product-photos?productVariantId=.
func (h *InventoryHandler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	variantID := r.URL.Query().Get("productVariantId")
	if variantID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "productVariantId is required", h.logger)
		return
	}
	resp, err := h.inventory.Photos(r.Context(), variantID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddPhoto handles POST /api/product-photos.
func (h *InventoryHandler) AddPhoto(w http.ResponseWriter, r *http.Request) {
	var cmd model.AddProductPhoto
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	if cmd.ProductVariantID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "productVariantId is required", h.logger)
		return
	}
	photo, err := h.inventory.AddPhoto(r.Context(), cmd)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, photo)
}

// DeletePhoto handles DELETE /api/product-photos/{id}.
func (h *InventoryHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ok, err := h.inventory.DeletePhoto(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": ok})
}
