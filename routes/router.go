package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"megacitycab/internal/config"
	"megacitycab/internal/handlers/admin"
	handlers "megacitycab/internal/handlers/shared"
	"megacitycab/internal/middleware"
	"megacitycab/internal/services"
	"megacitycab/internal/utils"
	"megacitycab/pkg/logger"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	Booking      *handlers.BookingHandler
	Vehicle      *handlers.VehicleHandler
	Registration *handlers.RegistrationHandler
	Customer     *handlers.CustomerHandler
	Admin        *admin.AdminHandler
}

// NewRouter builds the engine with the global middleware, /health, /metrics
// and the /api/v1 groups.
func NewRouter(cfg *config.Config, auth services.AuthService, h *Handlers, log *logger.Logger) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Security))
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.SessionLoader(auth, cfg.Security.SessionCookieName, log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	maxBody := int64(utils.MaxRequestSize)
	if cfg.Upload != nil && cfg.Upload.MaxRequestSize > 0 {
		maxBody = cfg.Upload.MaxRequestSize
	}

	v1 := router.Group("/api/v1")
	{
		SetupAuthRoutes(v1, h.Auth)
		SetupBookingRoutes(v1, h.Booking)
		SetupCatalogueRoutes(v1, h.Vehicle)
		SetupRegistrationRoutes(v1, h.Registration, maxBody)
		SetupCustomerRoutes(v1, h.Customer)
		SetupAdminRoutes(v1, h.Admin, maxBody)
	}

	return router
}
