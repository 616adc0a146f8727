package handlers

import (
	"net/http"

	"posada/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups every handler the router needs.
type HandlerBundle struct {
	Auth           *AuthHandler
	Rooms          *RoomHandler
	RoomTypes      *RoomTypeHandler
	Establishments *EstablishmentHandler
	Reservations   *ReservationHandler
	Users          *UserHandler
}

// HealthHandler handles GET /health with the latest snapshot of the
// external collaborators.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"health": utils.GetHealthStatus(),
	})
}
