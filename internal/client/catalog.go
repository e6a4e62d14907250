package client

import (
	"context"
	"net/url"
	"strconv"

	"atelier-desk/internal/model"
)

// CatalogClient talks to the product catalogue endpoints.
type CatalogClient struct {
	*Client
}

// NewCatalogClient wraps the shared transport.
func NewCatalogClient(c *Client) *CatalogClient {
	return &CatalogClient{Client: c}
}

// List returns variants matching the filter plus the total match count.
// The zero filter lists the whole catalogue.
func (c *CatalogClient) List(ctx context.Context, req model.VariantListRequest) (*model.VariantSearchResponse, error) {
	q := url.Values{}
	if req.ProductName != "" {
		q.Set("productName", req.ProductName)
	}
	if req.CategoryID != "" {
		q.Set("categoryId", req.CategoryID)
	}
	if req.Status != nil {
		q.Set("productStatus", strconv.Itoa(int(*req.Status)))
	}
	var resp model.VariantSearchResponse
	if err := c.get(ctx, "/product-variants", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Search returns variants matching a product name fragment plus the total
// match count.
func (c *CatalogClient) Search(ctx context.Context, name string) (*model.VariantSearchResponse, error) {
	return c.List(ctx, model.VariantListRequest{ProductName: name})
}

// SearchVariants is the orderform.Catalog view of Search.
func (c *CatalogClient) SearchVariants(ctx context.Context, name string) ([]model.ProductVariant, error) {
	resp, err := c.Search(ctx, name)
	if err != nil {
		return nil, err
	}
	return resp.Variants, nil
}
