package client

import (
	"context"
	"net/url"
	"strconv"

	"atelier-desk/internal/model"
)

// OrdersClient talks to the upstream order service.
type OrdersClient struct {
	*Client
}

// NewOrdersClient wraps the shared transport.
func NewOrdersClient(c *Client) *OrdersClient {
	return &OrdersClient{Client: c}
}

// List returns one page of orders.
func (c *OrdersClient) List(ctx context.Context, req model.OrderListRequest) (*model.OrderListResponse, error) {
	q := url.Values{}
	if req.Search != "" {
		q.Set("search", req.Search)
	}
	if req.Limit > 0 {
		q.Set("limit", strconv.Itoa(req.Limit))
	}
	if req.Offset > 0 {
		q.Set("offset", strconv.Itoa(req.Offset))
	}
	var resp model.OrderListResponse
	if err := c.get(ctx, "/orders", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Get returns a single order with items and variant snapshots.
func (c *OrdersClient) Get(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	if err := c.get(ctx, "/orders/"+url.PathEscape(id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Add submits a create-order command.
func (c *OrdersClient) Add(ctx context.Context, cmd *model.AddOrder) (*model.OrderCreationResult, error) {
	var res model.OrderCreationResult
	if err := c.post(ctx, "/orders", cmd, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Update submits an update-order command.
func (c *OrdersClient) Update(ctx context.Context, cmd *model.UpdateOrder) (*model.OrderUpdateResult, error) {
	var res model.OrderUpdateResult
	if err := c.put(ctx, "/orders", cmd, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// NextManualStatuses returns the statuses an order may move to next.
func (c *OrdersClient) NextManualStatuses(ctx context.Context, current model.OrderManualStatus) ([]model.OrderManualStatus, error) {
	q := url.Values{"currentStatus": {strconv.Itoa(int(current))}}
	var statuses []model.OrderManualStatus
	if err := c.get(ctx, "/orders/manual-status/next", q, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

// SetManualStatus moves an order to a new operator-driven status.
func (c *OrdersClient) SetManualStatus(ctx context.Context, req model.SetManualOrderStatus) (bool, error) {
	var ok bool
	if err := c.post(ctx, "/orders/manual-status", req, &ok); err != nil {
		return false, err
	}
	return ok, nil
}
