package client

import (
	"context"

	"atelier-desk/internal/model"
)

// ProductionClient talks to the sewing production endpoints.
type ProductionClient struct {
	*Client
}

// NewProductionClient wraps the shared transport.
func NewProductionClient(c *Client) *ProductionClient {
	return &ProductionClient{Client: c}
}

// SewingQueue returns the outstanding production demand.
func (c *ProductionClient) SewingQueue(ctx context.Context) (*model.SewingQueueResponse, error) {
	var resp model.SewingQueueResponse
	if err := c.get(ctx, "/order-items/sewing-queue", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SubmitSewedReport records a quantity actually sewn against a queue row.
func (c *ProductionClient) SubmitSewedReport(ctx context.Context, cmd model.SubmitSewedReport) (bool, error) {
	var ok bool
	if err := c.post(ctx, "/order-items/sewing-report", cmd, &ok); err != nil {
		return false, err
	}
	return ok, nil
}
