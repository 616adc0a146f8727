package handlers

import (
	"net/http"

	"posada/backend"
	"posada/models"
	"posada/utils"

	"github.com/gin-gonic/gin"
)

// RoomTypeHandler serves room-type reference data.
type RoomTypeHandler struct {
	API *backend.Client
}

func NewRoomTypeHandler(api *backend.Client) *RoomTypeHandler {
	return &RoomTypeHandler{API: api}
}

// ListRoomTypesHandler handles GET /api/roomtypes.
func (h *RoomTypeHandler) ListRoomTypesHandler(c *gin.Context) {
	roomTypes, err := h.API.ListRoomTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if roomTypes == nil {
		roomTypes = []models.RoomType{}
	}
	c.JSON(http.StatusOK, roomTypes)
}

// GetRoomTypeHandler handles GET /api/roomtypes/:id.
func (h *RoomTypeHandler) GetRoomTypeHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	roomType, err := h.API.GetRoomType(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, roomType)
}

// CreateRoomTypeHandler handles POST /api/admin/roomtypes.
func (h *RoomTypeHandler) CreateRoomTypeHandler(c *gin.Context) {
	var payload models.RoomTypePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Solicitud inválida", err.Error())
		return
	}
	roomType, err := h.API.CreateRoomType(c.Request.Context(), sessionToken(c), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, roomType)
}

// UpdateRoomTypeHandler handles PUT /api/admin/roomtypes/:id.
func (h *RoomTypeHandler) UpdateRoomTypeHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload models.RoomTypePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Solicitud inválida", err.Error())
		return
	}
	roomType, err := h.API.UpdateRoomType(c.Request.Context(), sessionToken(c), id, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, roomType)
}

// DeleteRoomTypeHandler handles DELETE /api/admin/roomtypes/:id.
func (h *RoomTypeHandler) DeleteRoomTypeHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.API.DeleteRoomType(c.Request.Context(), sessionToken(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tipo de habitación eliminado"})
}
