package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runAuthRouter(g *echo.Group, authController *controllers.AuthController) {
	g.POST("/auth/login", authController.Login)
	g.POST("/auth/refresh", authController.Refresh)
}
