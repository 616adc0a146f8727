package handlers

import (
	"net/http"

	"posada/backend"
	"posada/models"
	"posada/utils"

	"github.com/gin-gonic/gin"
)

// EstablishmentHandler serves establishment reference data.
type EstablishmentHandler struct {
	API *backend.Client
}

func NewEstablishmentHandler(api *backend.Client) *EstablishmentHandler {
	return &EstablishmentHandler{API: api}
}

// ListEstablishmentsHandler handles GET /api/establishments.
func (h *EstablishmentHandler) ListEstablishmentsHandler(c *gin.Context) {
	establishments, err := h.API.ListEstablishments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if establishments == nil {
		establishments = []models.Establishment{}
	}
	c.JSON(http.StatusOK, establishments)
}

// GetEstablishmentHandler handles GET /api/establishments/:id.
func (h *EstablishmentHandler) GetEstablishmentHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	establishment, err := h.API.GetEstablishment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, establishment)
}

// CreateEstablishmentHandler handles POST /api/admin/establishments.
func (h *EstablishmentHandler) CreateEstablishmentHandler(c *gin.Context) {
	var payload models.EstablishmentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Solicitud inválida", err.Error())
		return
	}
	establishment, err := h.API.CreateEstablishment(c.Request.Context(), sessionToken(c), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, establishment)
}

// UpdateEstablishmentHandler handles PUT /api/admin/establishments/:id.
func (h *EstablishmentHandler) UpdateEstablishmentHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload models.EstablishmentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Solicitud inválida", err.Error())
		return
	}
	establishment, err := h.API.UpdateEstablishment(c.Request.Context(), sessionToken(c), id, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, establishment)
}

// DeleteEstablishmentHandler handles DELETE /api/admin/establishments/:id.
func (h *EstablishmentHandler) DeleteEstablishmentHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.API.DeleteEstablishment(c.Request.Context(), sessionToken(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Establecimiento eliminado"})
}
