package controllers

import (
	"context"

	"stylistapi/models"
	"stylistapi/storage"

	"github.com/labstack/echo/v4"
)

type ClothingController struct {
	Store     storage.Storage
	Validator *models.InsertValidator
}

func (controller *ClothingController) ClothingRoutes(g *echo.Group) {
	g.GET("", controller.ListClothingItems)
	g.GET("/category/:category", controller.ListClothingItemsByCategory)
	g.GET("/:id", controller.GetClothingItem)
	g.POST("", controller.CreateClothingItem)
}

func (controller *ClothingController) ListClothingItems(c echo.Context) error {
	return listEntities(c, "Failed to fetch clothing items", controller.Store.ListClothingItems)
}

// ListClothingItemsByCategory matches case-insensitively; an unknown category
// yields an empty list.
func (controller *ClothingController) ListClothingItemsByCategory(c echo.Context) error {
	category := c.Param("category")
	return listEntities(c, "Failed to fetch clothing items by category", func(ctx context.Context) ([]models.ClothingItem, error) {
		return controller.Store.ListClothingItemsByCategory(ctx, category)
	})
}

func (controller *ClothingController) GetClothingItem(c echo.Context) error {
	return getEntity(c, "Clothing item not found", "Failed to fetch clothing item", controller.Store.GetClothingItem)
}

func (controller *ClothingController) CreateClothingItem(c echo.Context) error {
	return createEntity(c, controller.Validator, "Failed to create clothing item", controller.Store.CreateClothingItem)
}
