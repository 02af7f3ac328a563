package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stayhaven/hotel-booking/backend/internal/adapters/cache"
	"github.com/stayhaven/hotel-booking/backend/internal/adapters/database"
	"github.com/stayhaven/hotel-booking/backend/internal/api/handlers"
	"github.com/stayhaven/hotel-booking/backend/internal/api/middleware"
	"github.com/stayhaven/hotel-booking/backend/internal/api/routes"
	"github.com/stayhaven/hotel-booking/backend/internal/application/services"
	"github.com/stayhaven/hotel-booking/backend/internal/domain/entities"
	"github.com/stayhaven/hotel-booking/backend/internal/domain/repositories"
	"github.com/stayhaven/hotel-booking/backend/internal/infrastructure/clients/mongodb"
	"github.com/stayhaven/hotel-booking/backend/internal/infrastructure/clients/redis"
	"github.com/stayhaven/hotel-booking/backend/internal/infrastructure/observability"
	"github.com/stayhaven/hotel-booking/backend/pkg/config"
	"github.com/stayhaven/hotel-booking/backend/pkg/jwt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg)
	logger := observability.GetLogger()

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	// Initialize database client
	mongoClient, err := mongodb.NewClient(ctx, &cfg.Mongo)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize MongoDB client")
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()
		if err := mongoClient.Close(closeCtx); err != nil {
			logger.Error().Err(err).Msg("Error closing MongoDB client")
		}
	}()
	logger.Info().Msg("MongoDB client initialized successfully")

	// Initialize Redis client; the application works without caching
	redisClient, err := redis.NewClient(ctx, &cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize Redis client, running without cache")
		redisClient = nil
	} else {
		defer redisClient.Close()
		logger.Info().Msg("Redis client initialized successfully")
	}

	// Initialize adapters
	userAdapter := database.NewUserAdapter(mongoClient)
	bookingAdapter := database.NewBookingAdapter(mongoClient)

	roomAdapter := database.NewRoomAdapter(mongoClient)
	var roomRepo repositories.RoomRepository = roomAdapter
	if redisClient != nil {
		cacheProvider := cache.NewRedisAdapter(redisClient)
		roomRepo = database.NewCachedRoomAdapter(roomAdapter, cacheProvider)
		logger.Info().Msg("Room adapter wrapped with caching layer")
	}

	// Initialize services
	userService := services.NewUserService(userAdapter)
	roomService := services.NewRoomService(roomRepo)
	bookingService := services.NewBookingService(bookingAdapter)
	tokenManager := jwt.NewManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	// Initialize handlers
	tokenHandler := handlers.NewTokenHandler(userService, tokenManager)
	userHandler := handlers.NewUserHandler(userService)
	roomHandler := handlers.NewRoomHandler(roomService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// Set up router with guards
	router := routes.NewRouter(
		tokenHandler,
		userHandler,
		roomHandler,
		bookingHandler,
		middleware.Auth(tokenManager),
		middleware.RequireRole(userAdapter, entities.RoleOwner),
		middleware.RequireRole(userAdapter, entities.RoleAdmin),
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", serverAddr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
	}

	logger.Info().Msg("Server stopped")
}
