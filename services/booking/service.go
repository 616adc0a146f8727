package booking

import (
	"context"

	"posada/models"
	"posada/utils"
)

// Backend is the slice of the API client the booking service needs.
type Backend interface {
	GetRoom(ctx context.Context, id int64) (*models.Room, error)
	CreateReservation(ctx context.Context, token string, payload models.ReservationPayload) (*models.Reservation, error)
}

// RejectionError carries the field errors of a booking rejected before
// submission.
type RejectionError struct {
	FieldErrors map[string]string
}

func (e *RejectionError) Error() string {
	return "booking rejected by pre-submission validation"
}

// Quote is the price breakdown shown before confirming a booking.
type Quote struct {
	RoomID        int64   `json:"roomId"`
	CheckInDate   string  `json:"checkInDate"`
	CheckOutDate  string  `json:"checkOutDate"`
	Nights        int     `json:"nights"`
	PricePerNight float64 `json:"pricePerNight"`
	TotalAmount   float64 `json:"totalAmount"`
}

// Service runs the booking flow: quote, validate, submit.
type Service struct {
	Backend Backend
}

// NewService wires a booking service.
func NewService(api Backend) *Service {
	return &Service{Backend: api}
}

// QuoteStay prices a stay for a room. The date pair must already form a
// valid positive stay.
func (s *Service) QuoteStay(ctx context.Context, roomID int64, checkIn, checkOut string) (*Quote, error) {
	if fieldErrors := ValidateStay(checkIn, checkOut); len(fieldErrors) > 0 {
		return nil, &RejectionError{FieldErrors: fieldErrors}
	}
	room, err := s.Backend.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return &Quote{
		RoomID:        room.ID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		Nights:        Nights(checkIn, checkOut),
		PricePerNight: room.PricePerNight,
		TotalAmount:   TotalAmount(checkIn, checkOut, room.PricePerNight),
	}, nil
}

// CreateReservation validates the payload, computes the authoritative
// total from the room's nightly rate, and submits to the backend. The
// caller-supplied TotalAmount is ignored: the gateway always recomputes.
func (s *Service) CreateReservation(ctx context.Context, token string, payload models.ReservationPayload) (*models.Reservation, error) {
	room, err := s.Backend.GetRoom(ctx, payload.RoomID)
	if err != nil {
		utils.IncBackendError("get_room")
		return nil, err
	}

	if fieldErrors := ValidateReservation(room, payload); fieldErrors != nil {
		utils.IncBookingRejected("validation")
		return nil, &RejectionError{FieldErrors: fieldErrors}
	}

	payload.TotalAmount = TotalAmount(payload.CheckInDate, payload.CheckOutDate, room.PricePerNight)

	reservation, err := s.Backend.CreateReservation(ctx, token, payload)
	if err != nil {
		utils.IncReservationCreated("error")
		return nil, err
	}
	utils.IncReservationCreated("ok")
	return reservation, nil
}
