package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"posada/backend"
	"posada/config"
	"posada/handlers"
	"posada/middleware"
	"posada/routes"
	"posada/services/booking"
	"posada/services/session"
	"posada/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionStore()
	utils.InitCache()
	utils.RegisterMetrics()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// The backend API owns every entity; the gateway only caches.
	apiClient := backend.NewClient(
		config.AppConfig.APIBaseURL,
		time.Duration(config.AppConfig.BackendTimeoutSeconds)*time.Second,
	)
	if ttl := config.AppConfig.CacheTTLSeconds; ttl > 0 {
		apiClient.UseRedisCache(utils.GetCacheClient(), time.Duration(ttl)*time.Second)
	}

	// services.
	sessionStore := session.NewStore(
		utils.GetSessionClient(),
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
	)
	sessionService := session.NewService(apiClient, sessionStore)
	bookingService := booking.NewService(apiClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:           handlers.NewAuthHandler(sessionService, apiClient),
		Rooms:          handlers.NewRoomHandler(apiClient),
		RoomTypes:      handlers.NewRoomTypeHandler(apiClient),
		Establishments: handlers.NewEstablishmentHandler(apiClient),
		Reservations:   handlers.NewReservationHandler(apiClient, bookingService),
		Users:          handlers.NewUserHandler(apiClient),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, sessionService)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionClient(), utils.GetCacheClient()},
		apiClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s (backend %s)...", srv.Addr, apiClient.BaseURL())
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
