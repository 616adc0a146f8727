package backend

import (
	"context"
	"fmt"

	"posada/models"
)

const roomsCacheKey = "rooms"

// ListRooms returns all rooms. The listing is public and cached when a
// cache client is configured.
func (c *Client) ListRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if c.readCache(ctx, roomsCacheKey, &rooms) {
		return rooms, nil
	}
	if err := c.doGet(ctx, "/rooms", "", &rooms); err != nil {
		return nil, err
	}
	c.writeCache(ctx, roomsCacheKey, rooms)
	return rooms, nil
}

// GetRoom returns a single room by ID.
func (c *Client) GetRoom(ctx context.Context, id int64) (*models.Room, error) {
	var room models.Room
	if err := c.doGet(ctx, fmt.Sprintf("/rooms/%d", id), "", &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// CreateRoom creates a room (admin).
func (c *Client) CreateRoom(ctx context.Context, token string, payload models.RoomPayload) (*models.Room, error) {
	var room models.Room
	if err := c.doPost(ctx, "/rooms", token, payload, &room); err != nil {
		return nil, err
	}
	c.invalidateCache(ctx, roomsCacheKey)
	return &room, nil
}

// UpdateRoom updates a room (admin).
func (c *Client) UpdateRoom(ctx context.Context, token string, id int64, payload models.RoomPayload) (*models.Room, error) {
	var room models.Room
	if err := c.doPut(ctx, fmt.Sprintf("/rooms/%d", id), token, payload, &room); err != nil {
		return nil, err
	}
	c.invalidateCache(ctx, roomsCacheKey)
	return &room, nil
}

// DeleteRoom deletes a room (admin).
func (c *Client) DeleteRoom(ctx context.Context, token string, id int64) error {
	if err := c.doDelete(ctx, fmt.Sprintf("/rooms/%d", id), token); err != nil {
		return err
	}
	c.invalidateCache(ctx, roomsCacheKey)
	return nil
}
