package handlers

import (
	"net/http"

	"posada/backend"
	"posada/middleware"
	"posada/models"
	"posada/services/booking"
	"posada/utils"

	"github.com/gin-gonic/gin"
)

// ReservationHandler serves the customer booking flow and the admin
// reservation back office.
type ReservationHandler struct {
	API     *backend.Client
	Booking *booking.Service
}

func NewReservationHandler(api *backend.Client, bookingSvc *booking.Service) *ReservationHandler {
	return &ReservationHandler{API: api, Booking: bookingSvc}
}

// QuoteHandler handles POST /api/reservations/quote: nights and total
// for a room/date pair, without creating anything.
func (h *ReservationHandler) QuoteHandler(c *gin.Context) {
	var req struct {
		RoomID       int64  `json:"roomId" binding:"required"`
		CheckInDate  string `json:"checkInDate"`
		CheckOutDate string `json:"checkOutDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Solicitud inválida", err.Error())
		return
	}
	quote, err := h.Booking.QuoteStay(c.Request.Context(), req.RoomID, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// CreateReservationHandler handles POST /api/reservations. Validation
// failures come back as field errors; the total is always recomputed
// from the room's nightly rate.
func (h *ReservationHandler) CreateReservationHandler(c *gin.Context) {
	var payload models.ReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Solicitud inválida", err.Error())
		return
	}

	// Only admins may assign the reservation to another customer.
	if payload.UserID != 0 && !middleware.CurrentUser(c).IsAdmin() {
		payload.UserID = 0
	}

	reservation, err := h.Booking.CreateReservation(c.Request.Context(), sessionToken(c), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

// ListMyReservationsHandler handles GET /api/reservations/my.
func (h *ReservationHandler) ListMyReservationsHandler(c *gin.Context) {
	reservations, err := h.API.ListMyReservations(c.Request.Context(), sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if reservations == nil {
		reservations = []models.Reservation{}
	}
	c.JSON(http.StatusOK, reservations)
}

// GetReservationHandler handles GET /api/reservations/:id.
func (h *ReservationHandler) GetReservationHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	reservation, err := h.API.GetReservation(c.Request.Context(), sessionToken(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// ListAllReservationsHandler handles GET /api/admin/reservations: the
// enriched listing with embedded customer data.
func (h *ReservationHandler) ListAllReservationsHandler(c *gin.Context) {
	reservations, err := h.API.ListAllReservations(c.Request.Context(), sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if reservations == nil {
		reservations = []models.ReservationWithUser{}
	}
	c.JSON(http.StatusOK, reservations)
}

// UpdateReservationHandler handles PUT /api/admin/reservations/:id.
// When the update moves the stay dates or the room, the total is
// recomputed before forwarding so the invariant total = nights x rate
// holds.
func (h *ReservationHandler) UpdateReservationHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload models.ReservationUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Solicitud inválida", err.Error())
		return
	}

	if payload.CheckInDate != nil || payload.CheckOutDate != nil || payload.RoomID != nil {
		updated, err := h.repriceUpdate(c, id, &payload)
		if err != nil {
			respondError(c, err)
			return
		}
		payload = *updated
	}

	reservation, err := h.API.UpdateReservation(c.Request.Context(), sessionToken(c), id, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// repriceUpdate fills the missing sides of a partial date or room
// change from the stored reservation, validates the resulting stay, and
// recomputes the total from the target room's nightly rate.
func (h *ReservationHandler) repriceUpdate(c *gin.Context, id int64, payload *models.ReservationUpdatePayload) (*models.ReservationUpdatePayload, error) {
	current, err := h.API.GetReservation(c.Request.Context(), sessionToken(c), id)
	if err != nil {
		return nil, err
	}

	checkIn := current.CheckInDate
	if payload.CheckInDate != nil {
		checkIn = *payload.CheckInDate
	}
	checkOut := current.CheckOutDate
	if payload.CheckOutDate != nil {
		checkOut = *payload.CheckOutDate
	}
	if fieldErrors := booking.ValidateStay(checkIn, checkOut); len(fieldErrors) > 0 {
		return nil, &booking.RejectionError{FieldErrors: fieldErrors}
	}

	roomID := current.RoomID
	if payload.RoomID != nil {
		roomID = *payload.RoomID
	}
	room, err := h.API.GetRoom(c.Request.Context(), roomID)
	if err != nil {
		return nil, err
	}

	total := booking.TotalAmount(checkIn, checkOut, room.PricePerNight)
	payload.TotalAmount = &total
	return payload, nil
}

// DeleteReservationHandler handles DELETE /api/admin/reservations/:id.
func (h *ReservationHandler) DeleteReservationHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.API.DeleteReservation(c.Request.Context(), sessionToken(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reserva eliminada"})
}
