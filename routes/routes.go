package routes

import (
	"net/http"
	"time"

	"posada/handlers"
	"posada/middleware"
	"posada/services/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterPublicRoutes registers the unauthenticated catalogue endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/rooms", hb.Rooms.ListRoomsHandler)
		api.GET("/rooms/:id", hb.Rooms.GetRoomHandler)
		api.GET("/roomtypes", hb.RoomTypes.ListRoomTypesHandler)
		api.GET("/roomtypes/:id", hb.RoomTypes.GetRoomTypeHandler)
		api.GET("/establishments", hb.Establishments.ListEstablishmentsHandler)
		api.GET("/establishments/:id", hb.Establishments.GetEstablishmentHandler)
	}
}

// RegisterAuthRoutes registers login, registration and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions *session.Service) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/register", hb.Auth.RegisterHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.SessionMiddleware(sessions))
		api.GET("/me", hb.Auth.MeHandler)
		api.POST("/logout", hb.Auth.LogoutHandler)
	}
}

// RegisterReservationRoutes sets up the customer booking flow.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions *session.Service) {
	api := r.Group("/api/reservations")
	{
		api.Use(middleware.SessionMiddleware(sessions))
		api.GET("/my", hb.Reservations.ListMyReservationsHandler)
		api.POST("/", hb.Reservations.CreateReservationHandler)
		api.POST("/quote", hb.Reservations.QuoteHandler)
		api.GET("/:id", hb.Reservations.GetReservationHandler)
	}
}

// RegisterAdminRoutes sets up the back-office CRUD. Everything behind
// this group requires an authenticated session with the admin
// entitlement; unauthorized users are redirected to the safe default.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions *session.Service) {
	admin := r.Group("/api/admin")
	{
		admin.Use(middleware.SessionMiddleware(sessions))
		admin.Use(middleware.RequireAdmin())

		admin.GET("/reservations", hb.Reservations.ListAllReservationsHandler)
		admin.POST("/reservations", hb.Reservations.CreateReservationHandler)
		admin.PUT("/reservations/:id", hb.Reservations.UpdateReservationHandler)
		admin.DELETE("/reservations/:id", hb.Reservations.DeleteReservationHandler)

		admin.POST("/rooms", hb.Rooms.CreateRoomHandler)
		admin.PUT("/rooms/:id", hb.Rooms.UpdateRoomHandler)
		admin.DELETE("/rooms/:id", hb.Rooms.DeleteRoomHandler)

		admin.POST("/roomtypes", hb.RoomTypes.CreateRoomTypeHandler)
		admin.PUT("/roomtypes/:id", hb.RoomTypes.UpdateRoomTypeHandler)
		admin.DELETE("/roomtypes/:id", hb.RoomTypes.DeleteRoomTypeHandler)

		admin.POST("/establishments", hb.Establishments.CreateEstablishmentHandler)
		admin.PUT("/establishments/:id", hb.Establishments.UpdateEstablishmentHandler)
		admin.DELETE("/establishments/:id", hb.Establishments.DeleteEstablishmentHandler)

		admin.GET("/users", hb.Users.ListUserOptionsHandler)
	}
}

// RegisterHealthRoute registers the health-check and metrics endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions *session.Service) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPublicRoutes(r, hb)
	RegisterAuthRoutes(r, hb, sessions)
	RegisterReservationRoutes(r, hb, sessions)
	RegisterAdminRoutes(r, hb, sessions)
	RegisterHealthRoute(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recurso no encontrado"})
	})
}
