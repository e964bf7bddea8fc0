package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
	"inventory-system/pkg/middleware"
)

func runUserRouter(g *echo.Group, userController *controllers.UserController, authMW *middleware.AuthMiddleware) {
	// User administration is admin-only; RequireRole with no extra roles
	// passes admins alone.
	adminOnly := authMW.RequireRole()

	g.GET("/users", userController.GetUsers, adminOnly)
	g.GET("/users/:id", userController.FindUser, adminOnly)
	g.POST("/users", userController.CreateUser, adminOnly)
	g.PUT("/users/:id", userController.UpdateUser, adminOnly)
	g.DELETE("/users/:id", userController.DeleteUser, adminOnly)
}
