package backend

import (
	"context"
	"fmt"

	"posada/models"
)

// ListAllReservations returns every reservation with the embedded
// customer summary (admin listing).
func (c *Client) ListAllReservations(ctx context.Context, token string) ([]models.ReservationWithUser, error) {
	var reservations []models.ReservationWithUser
	if err := c.doGet(ctx, "/reservations/all", token, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListMyReservations returns the reservations owned by the session user.
func (c *Client) ListMyReservations(ctx context.Context, token string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := c.doGet(ctx, "/reservations/my", token, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// GetReservation returns a reservation by ID.
func (c *Client) GetReservation(ctx context.Context, token string, id int64) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := c.doGet(ctx, fmt.Sprintf("/reservations/%d", id), token, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// CreateReservation creates a reservation for the session user, or for
// payload.UserID when an admin assigns it.
func (c *Client) CreateReservation(ctx context.Context, token string, payload models.ReservationPayload) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := c.doPost(ctx, "/reservations/", token, payload, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// UpdateReservation applies a partial update (admin).
func (c *Client) UpdateReservation(ctx context.Context, token string, id int64, payload models.ReservationUpdatePayload) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := c.doPut(ctx, fmt.Sprintf("/reservations/%d", id), token, payload, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// DeleteReservation deletes a reservation (admin).
func (c *Client) DeleteReservation(ctx context.Context, token string, id int64) error {
	return c.doDelete(ctx, fmt.Sprintf("/reservations/%d", id), token)
}
