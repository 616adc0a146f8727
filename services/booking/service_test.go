package booking

import (
	"context"
	"errors"
	"testing"

	"posada/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	room      *models.Room
	roomErr   error
	created   *models.Reservation
	createErr error
	submitted *models.ReservationPayload
	usedToken string
}

func (f *fakeBackend) GetRoom(ctx context.Context, id int64) (*models.Room, error) {
	if f.roomErr != nil {
		return nil, f.roomErr
	}
	return f.room, nil
}

func (f *fakeBackend) CreateReservation(ctx context.Context, token string, payload models.ReservationPayload) (*models.Reservation, error) {
	f.usedToken = token
	f.submitted = &payload
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func availableRoom() *models.Room {
	return &models.Room{
		ID:            7,
		Status:        models.RoomAvailable,
		MaxOccupancy:  3,
		PricePerNight: 100,
	}
}

func TestQuoteStay(t *testing.T) {
	t.Run("prices the stay from the room rate", func(t *testing.T) {
		svc := NewService(&fakeBackend{room: availableRoom()})

		quote, err := svc.QuoteStay(context.Background(), 7, "2024-05-01", "2024-05-04")
		require.NoError(t, err)
		assert.Equal(t, int64(7), quote.RoomID)
		assert.Equal(t, 3, quote.Nights)
		assert.Equal(t, 100.0, quote.PricePerNight)
		assert.Equal(t, 300.0, quote.TotalAmount)
	})

	t.Run("rejects an invalid stay before fetching the room", func(t *testing.T) {
		backend := &fakeBackend{roomErr: errors.New("should not be called")}
		svc := NewService(backend)

		_, err := svc.QuoteStay(context.Background(), 7, "2024-05-04", "2024-05-01")
		var rejection *RejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Contains(t, rejection.FieldErrors, "checkOutDate")
	})
}

func TestCreateReservation(t *testing.T) {
	payload := models.ReservationPayload{
		RoomID:       7,
		CheckInDate:  "2024-05-01",
		CheckOutDate: "2024-05-04",
		Adults:       2,
	}

	t.Run("recomputes the total and submits", func(t *testing.T) {
		backend := &fakeBackend{
			room:    availableRoom(),
			created: &models.Reservation{ID: 42, TotalAmount: 300},
		}
		svc := NewService(backend)

		p := payload
		p.TotalAmount = 1 // caller values are never trusted
		reservation, err := svc.CreateReservation(context.Background(), "tok", p)
		require.NoError(t, err)
		assert.Equal(t, int64(42), reservation.ID)
		require.NotNil(t, backend.submitted)
		assert.Equal(t, 300.0, backend.submitted.TotalAmount)
		assert.Equal(t, "tok", backend.usedToken)
	})

	t.Run("rejects a zero night stay without submitting", func(t *testing.T) {
		backend := &fakeBackend{room: availableRoom()}
		svc := NewService(backend)

		p := payload
		p.CheckOutDate = p.CheckInDate
		_, err := svc.CreateReservation(context.Background(), "tok", p)
		var rejection *RejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Contains(t, rejection.FieldErrors, "checkOutDate")
		assert.Nil(t, backend.submitted)
	})

	t.Run("propagates a room fetch failure", func(t *testing.T) {
		roomErr := errors.New("boom")
		svc := NewService(&fakeBackend{roomErr: roomErr})

		_, err := svc.CreateReservation(context.Background(), "tok", payload)
		assert.ErrorIs(t, err, roomErr)
	})

	t.Run("propagates a backend submission failure", func(t *testing.T) {
		createErr := errors.New("conflict")
		svc := NewService(&fakeBackend{room: availableRoom(), createErr: createErr})

		_, err := svc.CreateReservation(context.Background(), "tok", payload)
		assert.ErrorIs(t, err, createErr)
	})
}
