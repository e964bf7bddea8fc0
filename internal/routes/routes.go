package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
	"inventory-system/pkg/config"
	"inventory-system/pkg/middleware"
	"inventory-system/pkg/service"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	// repositories
	companyRepo := repositories.NewCompanyRepository(dbConn)
	locationRepo := repositories.NewLocationRepository(dbConn, logger)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	recordRepo := repositories.NewRecordRepository(dbConn, logger)
	categoryRepo := repositories.NewCategoryRepository(dbConn)
	userRepo := repositories.NewUserRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// services
	locationService := services.NewLocationService(locationRepo, equipmentRepo, companyRepo, recordRepo, cfg.Tenant.StrictNames, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, locationRepo, logger)
	exportService := services.NewExportService(locationService, logger)
	categoryService := services.NewCategoryService(categoryRepo, cacheRepo, cfg.Cache.CategoryTTL, logger)
	userService := services.NewUserService(userRepo, logger)
	authService := services.NewAuthService(userRepo, jwtSvc, logger)

	// controllers
	locationController := controllers.NewLocationController(locationService, exportService, logger)
	equipmentController := controllers.NewEquipmentController(equipmentService, logger)
	categoryController := controllers.NewCategoryController(categoryService, logger)
	userController := controllers.NewUserController(userService, logger)
	authController := controllers.NewAuthController(authService, logger)

	runAuthRouter(api, authController)

	secureGroup := api.Group("", authMW.Auth)
	runLocationRouter(secureGroup, locationController, equipmentController, authMW)
	runCategoryRouter(secureGroup, categoryController)
	runUserRouter(secureGroup, userController, authMW)
}
