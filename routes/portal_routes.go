package routes

import (
	"github.com/gin-gonic/gin"

	handlers "megacitycab/internal/handlers/shared"
	"megacitycab/internal/middleware"
	"megacitycab/internal/models"
)

// SetupAuthRoutes sets up login, logout and session lookup
func SetupAuthRoutes(r *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
	}
}

// SetupBookingRoutes sets up fare estimation and booking submission. Only
// submission needs a session; guests may price a ride.
func SetupBookingRoutes(r *gin.RouterGroup, bookingHandler *handlers.BookingHandler) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("/estimate", bookingHandler.Estimate)
		bookings.POST("", bookingHandler.Submit)
	}

	places := r.Group("/places")
	{
		places.GET("/route", bookingHandler.Route)
		places.GET("/suggest", bookingHandler.Suggest)
	}
}

func SetupCatalogueRoutes(r *gin.RouterGroup, vehicleHandler *handlers.VehicleHandler) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("", vehicleHandler.Catalogue)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
		vehicles.POST("/:id/select", vehicleHandler.Select)
	}

	r.GET("/categories", vehicleHandler.Categories)
}

func SetupRegistrationRoutes(r *gin.RouterGroup, registrationHandler *handlers.RegistrationHandler, maxBody int64) {
	register := r.Group("/register")
	register.Use(middleware.BodyLimit(maxBody))
	{
		register.POST("/driver", registrationHandler.RegisterDriver)
		register.POST("/vehicle", registrationHandler.RegisterVehicle)
	}
}

func SetupCustomerRoutes(r *gin.RouterGroup, customerHandler *handlers.CustomerHandler) {
	profile := r.Group("/profile")
	profile.Use(middleware.RoleRequired(models.RoleCustomer))
	{
		profile.GET("", customerHandler.GetProfile)
		profile.PUT("", customerHandler.UpdateProfile)
	}
}
