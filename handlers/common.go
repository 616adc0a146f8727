// Package handlers exposes the gateway's HTTP surface: the public room
// catalogue, the customer booking flow, and the admin back office. All
// persistence lives behind the backend client; handlers only translate
// between HTTP and the services.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"posada/backend"
	"posada/middleware"
	"posada/services/booking"
	"posada/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps any failure to the response contract: field errors
// inline, auth failures as 401 so clients force a logout, transport
// failures as a retryable 503, everything else through the server error
// mapper. Failures never crash the page; prior state stays intact on
// the client.
func respondError(c *gin.Context, err error) {
	logger := utils.GetLogger()

	var rejection *booking.RejectionError
	if errors.As(err, &rejection) {
		utils.JSONFieldErrors(c, http.StatusUnprocessableEntity, rejection.FieldErrors)
		return
	}

	var transportErr *backend.TransportError
	if errors.As(err, &transportErr) {
		utils.IncBackendError("transport")
		logger.Warn("backend unreachable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, utils.ErrorResponse{
			Message: "Servicio no disponible. Inténtalo nuevamente.",
		})
		return
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		utils.IncBackendError("api")
		if apiErr.IsUnauthorized() {
			// The backend rejected the session token mid-flight; drop
			// the cached session so the gate cannot keep reporting
			// ready for an invalidated token.
			middleware.PurgeSession(c)
		}
		parsed := backend.ParseServerError(apiErr)
		if parsed.FieldErrors != nil {
			utils.JSONFieldErrors(c, http.StatusUnprocessableEntity, parsed.FieldErrors)
			return
		}
		status := apiErr.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		c.JSON(status, utils.ErrorResponse{Message: parsed.GeneralError})
		return
	}

	logger.Error("unexpected handler error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, utils.ErrorResponse{
		Message: backend.ParseServerError(err).GeneralError,
	})
}

// sessionToken returns the bearer token resolved by the session middleware.
func sessionToken(c *gin.Context) string {
	return middleware.SessionToken(c)
}

// pathID parses the numeric :id route parameter.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "Identificador inválido", c.Param("id"))
		return 0, false
	}
	return id, true
}
