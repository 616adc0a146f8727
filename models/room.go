package models

// RoomStatus is the lifecycle status of a room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
	RoomCleaning    RoomStatus = "cleaning"
)

var roomStatusLabels = map[RoomStatus]string{
	RoomAvailable:   "Disponible",
	RoomOccupied:    "Ocupada",
	RoomMaintenance: "Mantenimiento",
	RoomCleaning:    "Limpieza",
}

// Label returns the Spanish display label for the status. Unknown
// statuses fall back to the raw value.
func (s RoomStatus) Label() string {
	if label, ok := roomStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Bookable reports whether a room in this status accepts new reservations.
func (s RoomStatus) Bookable() bool {
	return s == RoomAvailable
}

// Room as returned by the backend.
type Room struct {
	ID              int64      `json:"id"`
	RoomNumber      string     `json:"roomNumber"`
	Floor           int        `json:"floor"`
	Status          RoomStatus `json:"status"`
	MaxOccupancy    int        `json:"maxOccupancy"`
	PricePerNight   float64    `json:"pricePerNight"`
	Description     string     `json:"description"`
	Features        []string   `json:"features"`
	EstablishmentID int64      `json:"establishmentId"`
	RoomTypeID      int64      `json:"roomTypeId"`
	CreatedBy       int64      `json:"createdBy,omitempty"`
}

// RoomPayload is the create/update body sent to the backend.
type RoomPayload struct {
	RoomNumber      string     `json:"roomNumber" binding:"required"`
	Floor           int        `json:"floor"`
	MaxOccupancy    int        `json:"maxOccupancy" binding:"required,min=1"`
	PricePerNight   float64    `json:"pricePerNight" binding:"min=0"`
	Description     string     `json:"description"`
	Features        []string   `json:"features"`
	Status          RoomStatus `json:"status"`
	EstablishmentID int64      `json:"establishmentId"`
	RoomTypeID      int64      `json:"roomTypeId"`
	CreatedBy       int64      `json:"createdBy,omitempty"`
}
