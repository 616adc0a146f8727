package models

// RoomType reference data, as owned by the backend.
type RoomType struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	BasePrice   float64  `json:"basePrice"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities"`
	Status      string   `json:"status"`
	CreatedBy   int64    `json:"createdBy,omitempty"`
	UpdatedBy   int64    `json:"updatedBy,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// RoomTypePayload is the create/update body.
type RoomTypePayload struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	BasePrice   float64  `json:"basePrice" binding:"min=0"`
	Capacity    int      `json:"capacity" binding:"required,min=1"`
	Amenities   []string `json:"amenities"`
	Status      string   `json:"status"`
	CreatedBy   int64    `json:"createdBy,omitempty"`
}
