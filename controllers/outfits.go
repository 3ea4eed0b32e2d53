package controllers

import (
	"context"

	"stylistapi/models"
	"stylistapi/storage"

	"github.com/labstack/echo/v4"
)

type OutfitController struct {
	Store     storage.Storage
	Validator *models.InsertValidator
}

func (controller *OutfitController) OutfitRoutes(g *echo.Group) {
	g.GET("", controller.ListOutfits)
	g.GET("/category/:category", controller.ListOutfitsByCategory)
	g.GET("/:id", controller.GetOutfit)
	g.POST("", controller.CreateOutfit)
}

func (controller *OutfitController) ListOutfits(c echo.Context) error {
	return listEntities(c, "Failed to fetch outfits", controller.Store.ListOutfits)
}

func (controller *OutfitController) ListOutfitsByCategory(c echo.Context) error {
	category := c.Param("category")
	return listEntities(c, "Failed to fetch outfits by category", func(ctx context.Context) ([]models.Outfit, error) {
		return controller.Store.ListOutfitsByCategory(ctx, category)
	})
}

func (controller *OutfitController) GetOutfit(c echo.Context) error {
	return getEntity(c, "Outfit not found", "Failed to fetch outfit", controller.Store.GetOutfit)
}

func (controller *OutfitController) CreateOutfit(c echo.Context) error {
	return createEntity(c, controller.Validator, "Failed to create outfit", controller.Store.CreateOutfit)
}
