package booking

import (
	"testing"

	"posada/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateStay(t *testing.T) {
	t.Run("valid stay has no errors", func(t *testing.T) {
		assert.Empty(t, ValidateStay("2024-05-01", "2024-05-04"))
	})

	t.Run("missing dates are required", func(t *testing.T) {
		fieldErrors := ValidateStay("", "")
		assert.Equal(t, msgFieldRequired, fieldErrors["checkInDate"])
		assert.Equal(t, msgFieldRequired, fieldErrors["checkOutDate"])
	})

	t.Run("malformed date", func(t *testing.T) {
		fieldErrors := ValidateStay("01/05/2024", "2024-05-04")
		assert.Equal(t, msgInvalidDate, fieldErrors["checkInDate"])
		assert.NotContains(t, fieldErrors, "checkOutDate")
	})

	t.Run("zero night stay is rejected", func(t *testing.T) {
		fieldErrors := ValidateStay("2024-05-01", "2024-05-01")
		assert.Equal(t, msgCheckOutTooEarly, fieldErrors["checkOutDate"])
	})

	t.Run("inverted stay is rejected", func(t *testing.T) {
		fieldErrors := ValidateStay("2024-05-04", "2024-05-01")
		assert.Equal(t, msgCheckOutTooEarly, fieldErrors["checkOutDate"])
	})
}

func TestValidateReservation(t *testing.T) {
	room := &models.Room{
		ID:            7,
		Status:        models.RoomAvailable,
		MaxOccupancy:  2,
		PricePerNight: 100,
	}
	payload := models.ReservationPayload{
		RoomID:       7,
		CheckInDate:  "2024-05-01",
		CheckOutDate: "2024-05-04",
		Adults:       2,
	}

	t.Run("clean payload returns nil", func(t *testing.T) {
		assert.Nil(t, ValidateReservation(room, payload))
	})

	t.Run("zero adults", func(t *testing.T) {
		p := payload
		p.Adults = 0
		fieldErrors := ValidateReservation(room, p)
		assert.Equal(t, msgAdultsRequired, fieldErrors["adults"])
	})

	t.Run("over occupancy counts children", func(t *testing.T) {
		p := payload
		p.Children = 1
		fieldErrors := ValidateReservation(room, p)
		assert.Equal(t, msgOverOccupancy, fieldErrors["adults"])
	})

	t.Run("room under maintenance is not bookable", func(t *testing.T) {
		r := *room
		r.Status = models.RoomMaintenance
		fieldErrors := ValidateReservation(&r, payload)
		assert.Equal(t, msgRoomNotBookable, fieldErrors["roomId"])
	})

	t.Run("stay and occupancy errors accumulate", func(t *testing.T) {
		p := payload
		p.CheckOutDate = p.CheckInDate
		p.Adults = 5
		fieldErrors := ValidateReservation(room, p)
		assert.Len(t, fieldErrors, 2)
		assert.Equal(t, msgCheckOutTooEarly, fieldErrors["checkOutDate"])
		assert.Equal(t, msgOverOccupancy, fieldErrors["adults"])
	})
}
