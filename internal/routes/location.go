package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
	"inventory-system/pkg/middleware"
)

func runLocationRouter(g *echo.Group, locationController *controllers.LocationController, equipmentController *controllers.EquipmentController, authMW *middleware.AuthMiddleware) {
	readWrite := authMW.RequireRole(middleware.RoleReadWrite)
	adminOnly := authMW.RequireRole()

	g.GET("/locations", locationController.GetLocations)
	g.POST("/locations", locationController.CreateLocation, adminOnly)
	g.PUT("/locations/:id", locationController.UpdateLocation, readWrite)
	g.DELETE("/locations/:id", locationController.DeleteLocation, adminOnly)

	// The equipment detail route is registered before the single-location
	// route, mirroring the route order of the original application.
	g.GET("/locations/:locationSlug/:equipmentSlug/export", locationController.ExportEquipmentRecords)
	g.GET("/locations/:locationSlug/:equipmentSlug", locationController.GetEquipmentDetail)
	g.GET("/locations/:locationSlug", locationController.FindLocation)

	g.POST("/locations/:locationSlug/equipments", equipmentController.CreateEquipment, adminOnly)
	g.PUT("/equipments/:id", equipmentController.UpdateEquipment, readWrite)
	g.DELETE("/equipments/:id", equipmentController.DeleteEquipment, adminOnly)
}
