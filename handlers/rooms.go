package handlers

import (
	"net/http"

	"posada/backend"
	"posada/models"
	"posada/utils"

	"github.com/gin-gonic/gin"
)

// RoomHandler serves the public room catalogue and the admin room CRUD.
type RoomHandler struct {
	API *backend.Client
}

func NewRoomHandler(api *backend.Client) *RoomHandler {
	return &RoomHandler{API: api}
}

// ListRoomsHandler handles GET /api/rooms.
func (h *RoomHandler) ListRoomsHandler(c *gin.Context) {
	rooms, err := h.API.ListRooms(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoomHandler handles GET /api/rooms/:id.
func (h *RoomHandler) GetRoomHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	room, err := h.API.GetRoom(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// CreateRoomHandler handles POST /api/admin/rooms.
func (h *RoomHandler) CreateRoomHandler(c *gin.Context) {
	var payload models.RoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Solicitud inválida", err.Error())
		return
	}
	room, err := h.API.CreateRoom(c.Request.Context(), sessionToken(c), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// UpdateRoomHandler handles PUT /api/admin/rooms/:id.
func (h *RoomHandler) UpdateRoomHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload models.RoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Solicitud inválida", err.Error())
		return
	}
	room, err := h.API.UpdateRoom(c.Request.Context(), sessionToken(c), id, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeleteRoomHandler handles DELETE /api/admin/rooms/:id.
func (h *RoomHandler) DeleteRoomHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.API.DeleteRoom(c.Request.Context(), sessionToken(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Habitación eliminada"})
}
