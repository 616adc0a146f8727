package backend

import (
	"context"
	"fmt"

	"posada/models"
)

const roomTypesCacheKey = "roomtypes"

// ListRoomTypes returns all room types.
func (c *Client) ListRoomTypes(ctx context.Context) ([]models.RoomType, error) {
	var roomTypes []models.RoomType
	if c.readCache(ctx, roomTypesCacheKey, &roomTypes) {
		return roomTypes, nil
	}
	if err := c.doGet(ctx, "/roomtypes", "", &roomTypes); err != nil {
		return nil, err
	}
	c.writeCache(ctx, roomTypesCacheKey, roomTypes)
	return roomTypes, nil
}

// GetRoomType returns a single room type by ID.
func (c *Client) GetRoomType(ctx context.Context, id int64) (*models.RoomType, error) {
	var roomType models.RoomType
	if err := c.doGet(ctx, fmt.Sprintf("/roomtypes/%d", id), "", &roomType); err != nil {
		return nil, err
	}
	return &roomType, nil
}

// CreateRoomType creates a room type (admin).
func (c *Client) CreateRoomType(ctx context.Context, token string, payload models.RoomTypePayload) (*models.RoomType, error) {
	var roomType models.RoomType
	if err := c.doPost(ctx, "/roomtypes", token, payload, &roomType); err != nil {
		return nil, err
	}
	c.invalidateCache(ctx, roomTypesCacheKey)
	return &roomType, nil
}

// UpdateRoomType updates a room type (admin).
func (c *Client) UpdateRoomType(ctx context.Context, token string, id int64, payload models.RoomTypePayload) (*models.RoomType, error) {
	var roomType models.RoomType
	if err := c.doPut(ctx, fmt.Sprintf("/roomtypes/%d", id), token, payload, &roomType); err != nil {
		return nil, err
	}
	c.invalidateCache(ctx, roomTypesCacheKey)
	return &roomType, nil
}

// DeleteRoomType deletes a room type (admin).
func (c *Client) DeleteRoomType(ctx context.Context, token string, id int64) error {
	if err := c.doDelete(ctx, fmt.Sprintf("/roomtypes/%d", id), token); err != nil {
		return err
	}
	c.invalidateCache(ctx, roomTypesCacheKey)
	return nil
}
