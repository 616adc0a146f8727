package middleware

import (
	"errors"
	"net/http"
	"strings"

	"posada/backend"
	"posada/models"
	"posada/services/session"
	"posada/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ctxToken    = "sessionToken"
	ctxUser     = "currentUser"
	ctxSessions = "sessionService"
)

// SessionMiddleware resolves the bearer token into the current user and
// stores both in the request context. Requests without a valid session
// are rejected with the unauthenticated gate state; the gate never
// leaves a stale ready state visible once a token is invalidated.
func SessionMiddleware(sessions *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortWithGate(c, http.StatusUnauthorized, session.GateUnauthenticated,
				"Necesitas iniciar sesión para acceder a esta sección.")
			return
		}

		user, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrUnauthenticated) {
				abortWithGate(c, http.StatusUnauthorized, session.GateUnauthenticated,
					"Tu sesión ha expirado. Inicia sesión nuevamente.")
				return
			}
			var transportErr *backend.TransportError
			if errors.As(err, &transportErr) {
				utils.IncBackendError("session_resolve")
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, utils.ErrorResponse{
					Message: "Servicio no disponible. Inténtalo nuevamente.",
				})
				return
			}
			utils.GetLogger().Error("session resolution failed", zap.Error(err))
			abortWithGate(c, http.StatusUnauthorized, session.GateUnauthenticated,
				"No se pudo verificar tu sesión.")
			return
		}

		c.Set(ctxToken, token)
		c.Set(ctxUser, user)
		c.Set(ctxSessions, sessions)
		utils.IncGateDecision(string(session.GateReady))
		c.Next()
	}
}

// RequireAdmin gates a route group on the back-office entitlement. It
// must run after SessionMiddleware. Unauthorized users get a redirect
// hint to the safe default, never partial access.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		state := session.EvaluateGate(user, user != nil, true)
		if state != session.GateReady {
			abortWithGate(c, http.StatusForbidden, session.GateUnauthorized,
				"No tienes permisos de administrador para acceder a esta sección.")
			return
		}
		c.Next()
	}
}

// CurrentUser returns the resolved session user, or nil outside a
// session-gated route.
func CurrentUser(c *gin.Context) *models.CurrentUser {
	val, ok := c.Get(ctxUser)
	if !ok {
		return nil
	}
	user, ok := val.(*models.CurrentUser)
	if !ok {
		return nil
	}
	return user
}

// SessionToken returns the bearer token of the current request.
func SessionToken(c *gin.Context) string {
	return c.GetString(ctxToken)
}

// PurgeSession drops the cached session for the current request's
// token. Handlers call this when a proxied backend call rejects the
// token, so the next resolution falls through to the backend instead of
// serving a stale ready state.
func PurgeSession(c *gin.Context) {
	val, ok := c.Get(ctxSessions)
	if !ok {
		return
	}
	sessions, ok := val.(*session.Service)
	if !ok {
		return
	}
	sessions.Purge(c.Request.Context(), SessionToken(c))
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func abortWithGate(c *gin.Context, status int, state session.GateState, message string) {
	utils.IncGateDecision(string(state))
	c.AbortWithStatusJSON(status, gin.H{
		"state":   string(state),
		"message": message,
	})
}
