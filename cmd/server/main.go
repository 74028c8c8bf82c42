package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"megacitycab/internal/backend"
	"megacitycab/internal/config"
	"megacitycab/internal/fare"
	"megacitycab/internal/handlers/admin"
	handlers "megacitycab/internal/handlers/shared"
	"megacitycab/internal/services"
	"megacitycab/internal/session"
	"megacitycab/pkg/cache"
	"megacitycab/pkg/logger"
	"megacitycab/pkg/maps"
	"megacitycab/routes"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:      logger.LogLevel(cfg.Log.Level),
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: time.RFC3339,
		Caller:     cfg.Log.Caller,
		AppName:    cfg.App.Name,
		Version:    cfg.App.Version,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	location, err := cfg.App.Location()
	if err != nil {
		appLogger.WithError(err).Fatal("Invalid timezone")
	}

	// Sessions and the vehicle catalogue live in Redis when it is reachable.
	var (
		store        session.Store = session.NewMemoryStore()
		vehicleCache services.CacheService
	)
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
			KeyPrefix:    cfg.Redis.KeyPrefix,
		})
		if err != nil {
			appLogger.WithError(err).Warn("Redis unavailable, using in-memory sessions")
		} else {
			defer redisCache.Close()
			store = session.NewRedisStore(redisCache)
			vehicleCache = redisCache
		}
	}

	mapsProvider, err := maps.NewProvider(
		cfg.Maps.Provider,
		cfg.Maps.GoogleMaps.APIKey,
		cfg.Maps.Mapbox.AccessToken,
		cfg.Maps.Mapbox.BaseURL,
		cfg.Maps.Region,
	)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to create maps provider")
	}

	client := backend.NewClient(cfg.Backend, appLogger)
	calculator := fare.NewCalculator(cfg.Fare.BaseFare, cfg.Fare.DefaultRatePerKm, cfg.App.Currency)

	// Initialize services
	authService := services.NewAuthService(client, store, cfg.Security.SessionTTL, appLogger)
	routeService := services.NewRouteService(mapsProvider, appLogger)
	vehicleService := services.NewVehicleService(client, vehicleCache, cfg.Redis.VehicleCacheTTL, store, appLogger)
	bookingService := services.NewBookingService(client, routeService, vehicleService, calculator, store, time.Now, location, appLogger)
	categoryService := services.NewCategoryService(client, store, appLogger)
	driverService := services.NewDriverService(client, store, appLogger)
	registrationService := services.NewRegistrationService(client, cfg.Upload, store, appLogger)
	adminService := services.NewAdminService(client, client, store, appLogger)
	customerService := services.NewCustomerService(client, store, appLogger)

	// Initialize handlers
	h := &routes.Handlers{
		Auth:         handlers.NewAuthHandler(authService, cfg.Security, appLogger),
		Booking:      handlers.NewBookingHandler(bookingService, routeService, appLogger),
		Vehicle:      handlers.NewVehicleHandler(vehicleService, categoryService, appLogger),
		Registration: handlers.NewRegistrationHandler(registrationService, cfg.Upload.MaxImageSize, appLogger),
		Customer:     handlers.NewCustomerHandler(customerService, appLogger),
		Admin:        admin.NewAdminHandler(adminService, vehicleService, driverService, categoryService, registrationService, cfg.Upload.MaxImageSize, appLogger),
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.NewRouter(cfg, authService, h, appLogger)
	if err := router.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
		appLogger.WithError(err).Fatal("Invalid trusted proxies")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.WithField("addr", srv.Addr).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.WithError(err).Error("Server forced to shut down")
	}
}
