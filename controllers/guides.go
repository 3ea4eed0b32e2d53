package controllers

import (
	"stylistapi/models"
	"stylistapi/storage"

	"github.com/labstack/echo/v4"
)

// GuideController serves style guides and color palettes, the two
// collections without category lookup.
type GuideController struct {
	Store     storage.Storage
	Validator *models.InsertValidator
}

func (controller *GuideController) StyleGuideRoutes(g *echo.Group) {
	g.GET("", controller.ListStyleGuides)
	g.GET("/:id", controller.GetStyleGuide)
	g.POST("", controller.CreateStyleGuide)
}

func (controller *GuideController) ColorPaletteRoutes(g *echo.Group) {
	g.GET("", controller.ListColorPalettes)
	g.GET("/:id", controller.GetColorPalette)
	g.POST("", controller.CreateColorPalette)
}

func (controller *GuideController) ListStyleGuides(c echo.Context) error {
	return listEntities(c, "Failed to fetch style guides", controller.Store.ListStyleGuides)
}

func (controller *GuideController) GetStyleGuide(c echo.Context) error {
	return getEntity(c, "Style guide not found", "Failed to fetch style guide", controller.Store.GetStyleGuide)
}

func (controller *GuideController) CreateStyleGuide(c echo.Context) error {
	return createEntity(c, controller.Validator, "Failed to create style guide", controller.Store.CreateStyleGuide)
}

func (controller *GuideController) ListColorPalettes(c echo.Context) error {
	return listEntities(c, "Failed to fetch color palettes", controller.Store.ListColorPalettes)
}

func (controller *GuideController) GetColorPalette(c echo.Context) error {
	return getEntity(c, "Color palette not found", "Failed to fetch color palette", controller.Store.GetColorPalette)
}

func (controller *GuideController) CreateColorPalette(c echo.Context) error {
	return createEntity(c, controller.Validator, "Failed to create color palette", controller.Store.CreateColorPalette)
}
