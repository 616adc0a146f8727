package handlers

import (
	"net/http"

	"posada/backend"
	"posada/models"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the reduced user listing the admin reservation
// form uses to assign a customer.
type UserHandler struct {
	API *backend.Client
}

func NewUserHandler(api *backend.Client) *UserHandler {
	return &UserHandler{API: api}
}

// ListUserOptionsHandler handles GET /api/admin/users.
func (h *UserHandler) ListUserOptionsHandler(c *gin.Context) {
	users, err := h.API.ListUserOptions(c.Request.Context(), sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if users == nil {
		users = []models.UserOption{}
	}
	c.JSON(http.StatusOK, users)
}
