package backend

import (
	"context"
	"fmt"

	"posada/models"
)

const establishmentsCacheKey = "establishments"

// ListEstablishments returns all establishments.
func (c *Client) ListEstablishments(ctx context.Context) ([]models.Establishment, error) {
	var establishments []models.Establishment
	if c.readCache(ctx, establishmentsCacheKey, &establishments) {
		return establishments, nil
	}
	if err := c.doGet(ctx, "/establishments", "", &establishments); err != nil {
		return nil, err
	}
	c.writeCache(ctx, establishmentsCacheKey, establishments)
	return establishments, nil
}

// GetEstablishment returns a single establishment by ID.
func (c *Client) GetEstablishment(ctx context.Context, id int64) (*models.Establishment, error) {
	var establishment models.Establishment
	if err := c.doGet(ctx, fmt.Sprintf("/establishments/%d", id), "", &establishment); err != nil {
		return nil, err
	}
	return &establishment, nil
}

// CreateEstablishment creates an establishment (admin).
func (c *Client) CreateEstablishment(ctx context.Context, token string, payload models.EstablishmentPayload) (*models.Establishment, error) {
	var establishment models.Establishment
	if err := c.doPost(ctx, "/establishments", token, payload, &establishment); err != nil {
		return nil, err
	}
	c.invalidateCache(ctx, establishmentsCacheKey)
	return &establishment, nil
}

// UpdateEstablishment updates an establishment (admin).
func (c *Client) UpdateEstablishment(ctx context.Context, token string, id int64, payload models.EstablishmentPayload) (*models.Establishment, error) {
	var establishment models.Establishment
	if err := c.doPut(ctx, fmt.Sprintf("/establishments/%d", id), token, payload, &establishment); err != nil {
		return nil, err
	}
	c.invalidateCache(ctx, establishmentsCacheKey)
	return &establishment, nil
}

// DeleteEstablishment deletes an establishment (admin).
func (c *Client) DeleteEstablishment(ctx context.Context, token string, id int64) error {
	if err := c.doDelete(ctx, fmt.Sprintf("/establishments/%d", id), token); err != nil {
		return err
	}
	c.invalidateCache(ctx, establishmentsCacheKey)
	return nil
}
