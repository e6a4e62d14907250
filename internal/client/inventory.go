package client

import (
	"context"
	"net/url"

	"atelier-desk/internal/model"
)

// InventoryClient talks to the catalogue management endpoints: categories,
// colors, sizes, measurement types, products, variants and photos.
type InventoryClient struct {
	*Client
}

// NewInventoryClient wraps the shared transport.
func NewInventoryClient(c *Client) *InventoryClient {
	return &InventoryClient{Client: c}
}

// Categories returns all product categories.
func (c *InventoryClient) Categories(ctx context.Context) (*model.CategoryListResponse, error) {
	var resp model.CategoryListResponse
	if err := c.get(ctx, "/categories", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Colors returns all garment colors.
func (c *InventoryClient) Colors(ctx context.Context) (*model.ColorListResponse, error) {
	var resp model.ColorListResponse
	if err := c.get(ctx, "/colors", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddColor creates a color and returns the stored record.
func (c *InventoryClient) AddColor(ctx context.Context, cmd model.AddColor) (*model.Color, error) {
	var color model.Color
	if err := c.post(ctx, "/colors", cmd, &color); err != nil {
		return nil, err
	}
	return &color, nil
}

// UpdateColor renames a color and returns the stored record.
func (c *InventoryClient) UpdateColor(ctx context.Context, cmd model.UpdateColor) (*model.Color, error) {
	var color model.Color
	if err := c.put(ctx, "/colors", cmd, &color); err != nil {
		return nil, err
	}
	return &color, nil
}

// Sizes returns all garment sizes.
func (c *InventoryClient) Sizes(ctx context.Context) (*model.SizeListResponse, error) {
	var resp model.SizeListResponse
	if err := c.get(ctx, "/sizes", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddSize creates a size and returns the stored record.
func (c *InventoryClient) AddSize(ctx context.Context, cmd model.AddSize) (*model.Size, error) {
	var size model.Size
	if err := c.post(ctx, "/sizes", cmd, &size); err != nil {
		return nil, err
	}
	return &size, nil
}

// MeasurementTypes returns all measurement types.
func (c *InventoryClient) MeasurementTypes(ctx context.Context) (*model.MeasurementTypeListResponse, error) {
	var resp model.MeasurementTypeListResponse
	if err := c.get(ctx, "/measurement-types", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Products returns all products.
func (c *InventoryClient) Products(ctx context.Context) (*model.ProductListResponse, error) {
	var resp model.ProductListResponse
	if err := c.get(ctx, "/products", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddProduct creates a product and returns the stored record.
func (c *InventoryClient) AddProduct(ctx context.Context, cmd model.AddProduct) (*model.Product, error) {
	var product model.Product
	if err := c.post(ctx, "/products", cmd, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct replaces a product and returns the stored record.
func (c *InventoryClient) UpdateProduct(ctx context.Context, cmd model.UpdateProduct) (*model.Product, error) {
	var product model.Product
	if err := c.put(ctx, "/products", cmd, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// AddVariant creates a product variant and returns the stored record.
func (c *InventoryClient) AddVariant(ctx context.Context, cmd model.AddProductVariant) (*model.ProductVariant, error) {
	var variant model.ProductVariant
	if err := c.post(ctx, "/product-variants", cmd, &variant); err != nil {
		return nil, err
	}
	return &variant, nil
}

// UpdateVariant replaces a product variant and returns the stored record.
func (c *InventoryClient) UpdateVariant(ctx context.Context, cmd model.UpdateProductVariant) (*model.ProductVariant, error) {
	var variant model.ProductVariant
	if err := c.put(ctx, "/product-variants", cmd, &variant); err != nil {
		return nil, err
	}
	return &variant, nil
}

// Photos returns the photos of one product variant.
func (c *InventoryClient) Photos(ctx context.Context, variantID string) (*model.PhotoListResponse, error) {
	q := url.Values{"productVariantId": {variantID}}
	var resp model.PhotoListResponse
	if err := c.get(ctx, "/product-photos", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddPhoto attaches a photo to a variant and returns the stored record.
func (c *InventoryClient) AddPhoto(ctx context.Context, cmd model.AddProductPhoto) (*model.ProductPhoto, error) {
	var photo model.ProductPhoto
	if err := c.post(ctx, "/product-photos", cmd, &photo); err != nil {
		return nil, err
	}
	return &photo, nil
}

// DeletePhoto removes a stored photo.
func (c *InventoryClient) DeletePhoto(ctx context.Context, id string) (bool, error) {
	var ok bool
	if err := c.delete(ctx, "/product-photos/"+url.PathEscape(id), &ok); err != nil {
		return false, err
	}
	return ok, nil
}
