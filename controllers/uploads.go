package controllers

import (
	"errors"
	"net/http"

	"stylistapi/models"
	"stylistapi/services"

	"github.com/labstack/echo/v4"
)

const uploadsDisabledMessage = "Image uploads are not configured"

// UploadsController hands out presigned object storage URLs. Both services
// are nil when no bucket is configured.
type UploadsController struct {
	AWSService services.AWSServiceProvider
	URLCache   services.URLCacheServiceProvider
}

func (controller *UploadsController) UploadRoutes(g *echo.Group) {
	g.POST("", controller.CreateUpload)
	g.GET("/url", controller.GetReadURL)
}

func (controller *UploadsController) CreateUpload(c echo.Context) error {
	if controller.AWSService == nil {
		return c.JSON(http.StatusServiceUnavailable, MessageResponse{Message: uploadsDisabledMessage})
	}
	var req models.UploadIn
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, "Validation error", err)
	}

	objectKey, err := services.NewObjectKey(req.Folder, req.FileName)
	if errors.Is(err, services.ErrUnsupportedFile) {
		return validationError(c, "Validation error", models.ValidationErrors{{
			Path:    "fileName",
			Message: "must end with one of: " + services.AllowedImageExtensions(),
		}})
	}
	if err != nil {
		return internalError(c, "Failed to create upload URL", err)
	}
	uploadURL, err := controller.AWSService.PresignUploadURL(c.Request().Context(), objectKey)
	if err != nil {
		return internalError(c, "Failed to create upload URL", err)
	}
	return c.JSON(http.StatusCreated, models.UploadOut{ObjectKey: objectKey, UploadURL: uploadURL})
}

func (controller *UploadsController) GetReadURL(c echo.Context) error {
	if controller.URLCache == nil {
		return c.JSON(http.StatusServiceUnavailable, MessageResponse{Message: uploadsDisabledMessage})
	}
	objectKey := c.QueryParam("key")
	if objectKey == "" {
		return validationError(c, "Validation error", models.ValidationErrors{{Path: "key", Message: "Required"}})
	}
	url, err := controller.URLCache.GetReadURL(c.Request().Context(), objectKey)
	if err != nil {
		return internalError(c, "Failed to create read URL", err)
	}
	return c.JSON(http.StatusOK, models.ReadURLOut{URL: url})
}
