package routes

import (
	"github.com/gin-gonic/gin"

	"megacitycab/internal/handlers/admin"
	"megacitycab/internal/middleware"
)

// SetupAdminRoutes sets up the back office. Everything requires an admin
// session.
func SetupAdminRoutes(r *gin.RouterGroup, adminHandler *admin.AdminHandler, maxBody int64) {
	group := r.Group("/admin")
	group.Use(middleware.AdminRequired())

	group.GET("/dashboard", adminHandler.Dashboard)

	vehicles := group.Group("/vehicles")
	{
		vehicles.GET("", adminHandler.ListVehicles)
		vehicles.PUT("/:id/approve", adminHandler.ApproveVehicle)
		vehicles.PUT("/:id/reject", adminHandler.RejectVehicle)
	}

	drivers := group.Group("/drivers")
	{
		drivers.GET("", adminHandler.ListDrivers)
		drivers.GET("/pending", adminHandler.PendingDrivers)
		drivers.POST("", middleware.BodyLimit(maxBody), adminHandler.AddDriver)
		drivers.PUT("/:id/approve", adminHandler.ApproveDriver)
		drivers.PUT("/:id/reject", adminHandler.RejectDriver)
		drivers.PUT("/:id/toggle-status", adminHandler.ToggleDriverStatus)
		drivers.DELETE("/:id", adminHandler.DeleteDriver)
	}

	categories := group.Group("/categories")
	{
		categories.GET("", adminHandler.ListCategories)
		categories.POST("", adminHandler.AddCategory)
		categories.PUT("/:id", adminHandler.UpdateCategory)
		categories.DELETE("/:id", adminHandler.DeleteCategory)
	}

	admins := group.Group("/admins")
	{
		admins.GET("", adminHandler.ListAdmins)
		admins.GET("/:id", adminHandler.GetAdmin)
		admins.PUT("/:id", adminHandler.UpdateAdmin)
		admins.DELETE("/:id", adminHandler.DeleteAdmin)
		admins.POST("/:id/picture", middleware.BodyLimit(maxBody), adminHandler.UploadPicture)
	}
}
