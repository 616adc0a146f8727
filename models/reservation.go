package models

// ReservationStatus is the lifecycle status of a reservation.
type ReservationStatus string

const (
	ReservationConfirmed  ReservationStatus = "confirmed"
	ReservationCancelled  ReservationStatus = "cancelled"
	ReservationCheckedIn  ReservationStatus = "checked_in"
	ReservationCheckedOut ReservationStatus = "checked_out"
)

// PaymentStatus is the payment state of a reservation.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// UserInfo is the customer summary the backend embeds in admin
// reservation listings.
type UserInfo struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Login     string `json:"login"`
	Telephone string `json:"telephone,omitempty"`
}

// Reservation as returned by the backend for regular (customer) endpoints.
// Check-in/check-out are calendar dates (YYYY-MM-DD); the checkout day is
// not billed.
type Reservation struct {
	ID                 int64             `json:"id"`
	UserID             int64             `json:"userId"`
	RoomID             int64             `json:"roomId"`
	CheckInDate        string            `json:"checkInDate"`
	CheckOutDate       string            `json:"checkOutDate"`
	Adults             int               `json:"adults"`
	Children           int               `json:"children,omitempty"`
	TotalAmount        float64           `json:"totalAmount"`
	SpecialRequests    string            `json:"specialRequests,omitempty"`
	AINotes            string            `json:"aiNotes,omitempty"`
	Status             ReservationStatus `json:"status"`
	PaymentStatus      PaymentStatus     `json:"paymentStatus"`
	CancellationReason string            `json:"cancellationReason,omitempty"`
	CreatedAt          string            `json:"createdAt,omitempty"`
	UpdatedAt          string            `json:"updatedAt,omitempty"`
}

// ReservationWithUser is the enriched variant returned by the admin
// listing endpoint. It is a distinct type rather than an optional field
// so call sites state which shape they expect.
type ReservationWithUser struct {
	Reservation
	User UserInfo `json:"user"`
}

// ReservationPayload is the create body. UserID is only set by admins
// assigning a reservation to a customer; regular customers are resolved
// from their own session by the backend.
type ReservationPayload struct {
	RoomID          int64   `json:"roomId" binding:"required"`
	CheckInDate     string  `json:"checkInDate" binding:"required"`
	CheckOutDate    string  `json:"checkOutDate" binding:"required"`
	Adults          int     `json:"adults" binding:"required,min=1"`
	Children        int     `json:"children"`
	TotalAmount     float64 `json:"totalAmount"`
	SpecialRequests string  `json:"specialRequests,omitempty"`
	AINotes         string  `json:"aiNotes,omitempty"`
	UserID          int64   `json:"userId,omitempty"`
}

// ReservationUpdatePayload is the admin partial-update body. Nil fields
// are left untouched by the backend.
type ReservationUpdatePayload struct {
	RoomID             *int64             `json:"roomId,omitempty"`
	CheckInDate        *string            `json:"checkInDate,omitempty"`
	CheckOutDate       *string            `json:"checkOutDate,omitempty"`
	Adults             *int               `json:"adults,omitempty"`
	Children           *int               `json:"children,omitempty"`
	TotalAmount        *float64           `json:"totalAmount,omitempty"`
	SpecialRequests    *string            `json:"specialRequests,omitempty"`
	Status             *ReservationStatus `json:"status,omitempty"`
	PaymentStatus      *PaymentStatus     `json:"paymentStatus,omitempty"`
	CancellationReason *string            `json:"cancellationReason,omitempty"`
}
