package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runCategoryRouter(g *echo.Group, categoryController *controllers.CategoryController) {
	g.GET("/categories", categoryController.GetCategories)
}
