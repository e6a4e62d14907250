package client

import (
	"context"
	"net/url"
	"strconv"

	"atelier-desk/internal/model"
)

// CarrierClient talks to the carrier integration endpoints of the upstream
// API: city/warehouse/contact lookups and directory synchronisation.
type CarrierClient struct {
	*Client
}

// NewCarrierClient wraps the shared transport.
func NewCarrierClient(c *Client) *CarrierClient {
	return &CarrierClient{Client: c}
}

// SearchCities looks carrier cities up by name fragment.
func (c *CarrierClient) SearchCities(ctx context.Context, name string) ([]model.City, error) {
	q := url.Values{"cityName": {name}}
	var resp struct {
		Cities []model.City `json:"cities"`
	}
	if err := c.get(ctx, "/carrier/cities/search", q, &resp); err != nil {
		return nil, err
	}
	return resp.Cities, nil
}

// SearchWarehouses looks warehouses up within a city.
func (c *CarrierClient) SearchWarehouses(ctx context.Context, cityRef, text string) ([]model.Warehouse, error) {
	q := url.Values{"cityRef": {cityRef}, "search": {text}}
	var warehouses []model.Warehouse
	if err := c.get(ctx, "/carrier/warehouses/search", q, &warehouses); err != nil {
		return nil, err
	}
	return warehouses, nil
}

// SearchContactPersons looks directory contacts up by phone prefix.
func (c *CarrierClient) SearchContactPersons(ctx context.Context, phone string) ([]model.ContactPerson, error) {
	q := url.Values{"phone": {phone}}
	var contacts []model.ContactPerson
	if err := c.get(ctx, "/carrier/contact-persons", q, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// SenderContactPersons returns the contacts registered for the sender.
func (c *CarrierClient) SenderContactPersons(ctx context.Context) ([]model.ContactPerson, error) {
	var contacts []model.ContactPerson
	if err := c.get(ctx, "/carrier/sender/contact-persons", nil, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// SyncStatus returns the currently visible directory sync run.
func (c *CarrierClient) SyncStatus(ctx context.Context) (*model.CurrentSyncStatus, error) {
	var status model.CurrentSyncStatus
	if err := c.get(ctx, "/carrier/sync/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// TriggerSync requests a new directory sync run.
func (c *CarrierClient) TriggerSync(ctx context.Context) error {
	return c.post(ctx, "/carrier/sync/trigger", nil, nil)
}

// SyncHistory returns up to limit past sync runs, newest first.
func (c *CarrierClient) SyncHistory(ctx context.Context, limit int) ([]model.SyncRecord, error) {
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	var resp model.SyncHistoryResponse
	if err := c.get(ctx, "/carrier/sync/history", q, &resp); err != nil {
		return nil, err
	}
	return resp.Records, nil
}
