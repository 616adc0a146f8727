package models

// Establishment reference data, as owned by the backend.
type Establishment struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	Address      string         `json:"address,omitempty"`
	City         string         `json:"city,omitempty"`
	Country      string         `json:"country,omitempty"`
	ZipCode      string         `json:"zipCode,omitempty"`
	Phone        string         `json:"phone,omitempty"`
	Email        string         `json:"email,omitempty"`
	Website      string         `json:"website,omitempty"`
	Stars        int            `json:"stars,omitempty"`
	CheckInTime  string         `json:"checkInTime,omitempty"`
	CheckOutTime string         `json:"checkOutTime,omitempty"`
	Latitude     float64        `json:"latitude,omitempty"`
	Longitude    float64        `json:"longitude,omitempty"`
	AISettings   map[string]any `json:"aiSettings,omitempty"`
	Status       string         `json:"status,omitempty"`
	CreatedBy    int64          `json:"createdBy,omitempty"`
	UpdatedBy    int64          `json:"updatedBy,omitempty"`
	CreatedAt    string         `json:"createdAt,omitempty"`
	UpdatedAt    string         `json:"updatedAt,omitempty"`
}

// EstablishmentPayload is the create/update body.
type EstablishmentPayload struct {
	Name         string         `json:"name" binding:"required"`
	Description  string         `json:"description,omitempty"`
	Address      string         `json:"address,omitempty"`
	City         string         `json:"city,omitempty"`
	Country      string         `json:"country,omitempty"`
	ZipCode      string         `json:"zipCode,omitempty"`
	Phone        string         `json:"phone,omitempty"`
	Email        string         `json:"email,omitempty"`
	Website      string         `json:"website,omitempty"`
	Stars        int            `json:"stars,omitempty"`
	CheckInTime  string         `json:"checkInTime,omitempty"`
	CheckOutTime string         `json:"checkOutTime,omitempty"`
	Latitude     float64        `json:"latitude,omitempty"`
	Longitude    float64        `json:"longitude,omitempty"`
	AISettings   map[string]any `json:"aiSettings,omitempty"`
	Status       string         `json:"status,omitempty"`
}
