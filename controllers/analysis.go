package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"stylistapi/metrics"
	"stylistapi/models"
	"stylistapi/services"
	"stylistapi/storage"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type StyleAnalysisController struct {
	Store     storage.Storage
	Analyzer  services.StyleAnalyzer
	Validator *models.InsertValidator
}

func (controller *StyleAnalysisController) StyleAnalysisRoutes(g *echo.Group) {
	g.POST("", controller.AnalyzePhoto)
	g.GET("", controller.ListStyleAnalyses)
	g.GET("/:id", controller.GetStyleAnalysis)
}

// AnalyzePhoto sends the photo to the analyzer once and stores the advice
// together with the image data exactly as submitted.
func (controller *StyleAnalysisController) AnalyzePhoto(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Could not read request body"})
	}
	in, err := models.DecodeInsert[models.AnalyzePhotoIn](controller.Validator, body)
	if err != nil {
		return validationError(c, "Invalid request data", err)
	}

	log := requestLogger(c)
	start := time.Now()
	result, err := controller.Analyzer.AnalyzePhoto(c.Request().Context(), services.StripDataURLPrefix(in.ImageData))
	if err == nil {
		// list minimums apply to model output the same way they apply to clients
		if verr := controller.Validator.Struct(result.ToInsert(in.ImageData)); verr != nil {
			err = fmt.Errorf("%w: %v", services.ErrMalformedResponse, verr)
		}
	}
	kind := services.ErrorKind(err)
	metrics.RecordAnalysis(kind, time.Since(start))

	if err != nil {
		log.WithError(err).WithField("kind", kind).Error("Error analyzing photo")
		captureException(c, err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Error analyzing photo", Error: err.Error(), Kind: kind})
	}

	stored, err := controller.Store.CreateStyleAnalysis(c.Request().Context(), result.ToInsert(in.ImageData))
	if err != nil {
		log.WithError(err).Error("Error saving photo analysis")
		captureException(c, err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Error analyzing photo", Error: err.Error(), Kind: "storage_error"})
	}
	log.WithFields(logrus.Fields{"analysis_id": stored.ID, "duration": time.Since(start).String()}).Info("photo analysis stored")
	return c.JSON(http.StatusOK, stored)
}

func (controller *StyleAnalysisController) ListStyleAnalyses(c echo.Context) error {
	analyses, err := controller.Store.ListStyleAnalyses(c.Request().Context())
	if err != nil {
		requestLogger(c).WithError(err).Error("Error retrieving style analyses")
		captureException(c, err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Error retrieving style analyses", Error: err.Error()})
	}
	return c.JSON(http.StatusOK, analyses)
}

func (controller *StyleAnalysisController) GetStyleAnalysis(c echo.Context) error {
	id, err := pathID(c)
	if errors.Is(err, errInvalidID) {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: invalidIDMessage})
	}
	if err == nil {
		var analysis *models.StyleAnalysis
		analysis, err = controller.Store.GetStyleAnalysis(c.Request().Context(), id)
		if err == nil {
			return c.JSON(http.StatusOK, analysis)
		}
	}
	if errors.Is(err, storage.ErrNotFound) {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Style analysis not found"})
	}
	requestLogger(c).WithError(err).Error("Error retrieving style analysis")
	captureException(c, err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Error retrieving style analysis", Error: err.Error()})
}
