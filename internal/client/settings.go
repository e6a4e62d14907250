package client

import (
	"context"
	"net/url"

	"atelier-desk/internal/model"
)

// SettingsClient talks to the per-user carrier settings endpoints.
type SettingsClient struct {
	*Client
}

// NewSettingsClient wraps the shared transport.
func NewSettingsClient(c *Client) *SettingsClient {
	return &SettingsClient{Client: c}
}

// Get returns the operator's carrier settings.
func (c *SettingsClient) Get(ctx context.Context) (*model.UserSettings, error) {
	var settings model.UserSettings
	if err := c.get(ctx, "/user-settings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Create stores new carrier settings.
func (c *SettingsClient) Create(ctx context.Context, cmd model.AddUserSettings) (bool, error) {
	var ok bool
	if err := c.post(ctx, "/user-settings", cmd, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

// Update replaces the carrier settings.
func (c *SettingsClient) Update(ctx context.Context, cmd model.UpdateUserSettings) (bool, error) {
	var ok bool
	if err := c.put(ctx, "/user-settings", cmd, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

// Delete removes the carrier settings record.
func (c *SettingsClient) Delete(ctx context.Context, id string) (bool, error) {
	var ok bool
	if err := c.delete(ctx, "/user-settings/"+url.PathEscape(id), &ok); err != nil {
		return false, err
	}
	return ok, nil
}
