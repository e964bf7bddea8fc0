package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	"inventory-system/pkg/api"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"
)

type LocationController struct {
	locationService services.LocationServiceInterface
	exportService   services.ExportServiceInterface
	logger          *zap.Logger
}

func NewLocationController(
	locationService services.LocationServiceInterface,
	exportService services.ExportServiceInterface,
	logger *zap.Logger,
) *LocationController {
	return &LocationController{
		locationService: locationService,
		exportService:   exportService,
		logger:          logger,
	}
}

func (c *LocationController) GetLocations(ctx echo.Context) error {
	limit, offset, page := utils.ParsePaginationParams(ctx.Request().URL.Query())

	list, total, err := c.locationService.GetLocations(ctx.Request().Context(), limit, offset)
	if err != nil {
		c.logger.Error("GetLocations failed", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.SuccessList(ctx, "locations", list, total, page, limit)
}

func (c *LocationController) FindLocation(ctx echo.Context) error {
	slug := ctx.Param("locationSlug")

	location, err := c.locationService.FindLocationBySlug(ctx.Request().Context(), slug)
	if err != nil {
		c.logger.Error("FindLocation failed", zap.String("slug", slug), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.SuccessOne(ctx, http.StatusOK, "location", location)
}

func (c *LocationController) GetEquipmentDetail(ctx echo.Context) error {
	locationSlug := ctx.Param("locationSlug")
	equipmentSlug := ctx.Param("equipmentSlug")

	detail, err := c.locationService.GetEquipmentDetail(ctx.Request().Context(), locationSlug, equipmentSlug)
	if err != nil {
		c.logger.Error("GetEquipmentDetail failed",
			zap.String("location", locationSlug),
			zap.String("equipment", equipmentSlug),
			zap.Error(err),
		)
		return api.ErrorResponse(ctx, err)
	}

	return api.SuccessOne(ctx, http.StatusOK, "equipment detail", detail)
}

func (c *LocationController) ExportEquipmentRecords(ctx echo.Context) error {
	locationSlug := ctx.Param("locationSlug")
	equipmentSlug := ctx.Param("equipmentSlug")

	data, filename, err := c.exportService.ExportEquipmentRecords(ctx.Request().Context(), locationSlug, equipmentSlug)
	if err != nil {
		c.logger.Error("ExportEquipmentRecords failed",
			zap.String("location", locationSlug),
			zap.String("equipment", equipmentSlug),
			zap.Error(err),
		)
		return api.ErrorResponse(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (c *LocationController) CreateLocation(ctx echo.Context) error {
	var payload dto.CreateLocationDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if err := c.locationService.CreateLocation(ctx.Request().Context(), payload); err != nil {
		c.logger.Error("CreateLocation failed", zap.Any("payload", payload), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.SuccessOne(ctx, http.StatusCreated, "location created", struct{}{})
}

func (c *LocationController) UpdateLocation(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed location id", err,
			map[string]interface{}{"param": ctx.Param("id")}))
	}

	var payload dto.UpdateLocationDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if err := c.locationService.UpdateLocation(ctx.Request().Context(), id, payload); err != nil {
		c.logger.Error("UpdateLocation failed", zap.Uint64("id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.SuccessOne(ctx, http.StatusOK, "location updated", struct{}{})
}

func (c *LocationController) DeleteLocation(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed location id", err,
			map[string]interface{}{"param": ctx.Param("id")}))
	}

	if err := c.locationService.DeleteLocation(ctx.Request().Context(), id); err != nil {
		c.logger.Error("DeleteLocation failed", zap.Uint64("id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.SuccessOne(ctx, http.StatusOK, "location deleted", struct{}{})
}
