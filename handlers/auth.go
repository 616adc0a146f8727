package handlers

import (
	"net/http"

	"posada/backend"
	"posada/middleware"
	"posada/models"
	"posada/services/session"
	"posada/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves login, logout, registration and session resolution.
type AuthHandler struct {
	Sessions *session.Service
	API      *backend.Client
}

func NewAuthHandler(sessions *session.Service, api *backend.Client) *AuthHandler {
	return &AuthHandler{Sessions: sessions, API: api}
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var credentials models.LoginCredentials
	if err := c.ShouldBindJSON(&credentials); err != nil {
		utils.GetLogger().Warn("Invalid login request", zap.Error(err))
		utils.JSONFieldErrors(c, http.StatusUnprocessableEntity, map[string]string{
			"login": "Este campo es requerido",
		})
		return
	}

	result, err := h.Sessions.Login(c.Request.Context(), credentials)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// LogoutHandler handles POST /api/auth/logout. The cached session is
// purged even when the backend call fails.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	token := middleware.SessionToken(c)
	if err := h.Sessions.Logout(c.Request.Context(), token); err != nil {
		utils.GetLogger().Warn("backend logout failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sesión cerrada"})
}

// MeHandler handles GET /api/auth/me: the resolved claim set plus the
// gate state for the requested scope (?scope=admin evaluates the
// back-office entitlement).
func (h *AuthHandler) MeHandler(c *gin.Context) {
	user := middleware.CurrentUser(c)
	requireAdmin := c.Query("scope") == "admin"
	state := session.EvaluateGate(user, user != nil, requireAdmin)
	c.JSON(http.StatusOK, gin.H{
		"state": string(state),
		"user":  user,
	})
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var data models.UserRegistrationData
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.GetLogger().Warn("Invalid registration request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Solicitud inválida", err.Error())
		return
	}

	user, err := h.API.Register(c.Request.Context(), data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}
