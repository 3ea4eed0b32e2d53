package controllers

import (
	"stylistapi/config"
	"stylistapi/models"
	"stylistapi/services"
	"stylistapi/storage"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// photos arrive inline as base64, so the limit is well above plain JSON needs
const bodyLimit = "12M"

type CustomValidator struct {
	validator *models.InsertValidator
}

// Validate returns models.ValidationErrors so handlers can answer with the
// full field list.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// SetupServer wires every route. awsService and urlCache may be nil, in which
// case the upload endpoints answer 503.
func SetupServer(
	store storage.Storage,
	analyzer services.StyleAnalyzer,
	awsService services.AWSServiceProvider,
	urlCache services.URLCacheServiceProvider,
	cfg config.Config,
	log *logrus.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	iv := models.NewInsertValidator(cfg.ListMinLength)
	e.Validator = &CustomValidator{validator: iv}

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: newRequestID}))
	e.Use(ContextLoggerMiddleware(log))
	e.Use(RequestLogMiddleware(log))
	e.Use(MetricsMiddleware)
	e.Use(middleware.Recover())
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(middleware.BodyLimit(bodyLimit))

	healthController := HealthController{Store: store}
	healthController.HealthRoutes(e)

	api := e.Group("/api")

	clothingController := ClothingController{Store: store, Validator: iv}
	clothingController.ClothingRoutes(api.Group("/clothing-items"))

	outfitController := OutfitController{Store: store, Validator: iv}
	outfitController.OutfitRoutes(api.Group("/outfits"))

	guideController := GuideController{Store: store, Validator: iv}
	guideController.StyleGuideRoutes(api.Group("/style-guides"))
	guideController.ColorPaletteRoutes(api.Group("/color-palettes"))

	analysisController := StyleAnalysisController{Store: store, Analyzer: analyzer, Validator: iv}
	analysisController.StyleAnalysisRoutes(api.Group("/style-analysis"))

	uploadsController := UploadsController{AWSService: awsService, URLCache: urlCache}
	uploadsController.UploadRoutes(api.Group("/uploads"))

	return e
}
