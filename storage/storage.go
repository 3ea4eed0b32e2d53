package storage

import (
	"context"
	"errors"

	"stylistapi/models"
)

// ErrNotFound is returned by Get methods when no record has the given id.
var ErrNotFound = errors.New("record not found")

// Storage is implemented by MemStorage and DatabaseStorage. Both allocate ids
// in strictly increasing order per collection and never reuse them.
type Storage interface {
	ListClothingItems(ctx context.Context) ([]models.ClothingItem, error)
	ListClothingItemsByCategory(ctx context.Context, category string) ([]models.ClothingItem, error)
	GetClothingItem(ctx context.Context, id uint) (*models.ClothingItem, error)
	CreateClothingItem(ctx context.Context, in *models.InsertClothingItem) (*models.ClothingItem, error)

	ListOutfits(ctx context.Context) ([]models.Outfit, error)
	ListOutfitsByCategory(ctx context.Context, category string) ([]models.Outfit, error)
	GetOutfit(ctx context.Context, id uint) (*models.Outfit, error)
	CreateOutfit(ctx context.Context, in *models.InsertOutfit) (*models.Outfit, error)

	ListStyleGuides(ctx context.Context) ([]models.StyleGuide, error)
	GetStyleGuide(ctx context.Context, id uint) (*models.StyleGuide, error)
	CreateStyleGuide(ctx context.Context, in *models.InsertStyleGuide) (*models.StyleGuide, error)

	ListColorPalettes(ctx context.Context) ([]models.ColorPalette, error)
	GetColorPalette(ctx context.Context, id uint) (*models.ColorPalette, error)
	CreateColorPalette(ctx context.Context, in *models.InsertColorPalette) (*models.ColorPalette, error)

	// ListStyleAnalyses returns the most recent analysis first.
	ListStyleAnalyses(ctx context.Context) ([]models.StyleAnalysis, error)
	GetStyleAnalysis(ctx context.Context, id uint) (*models.StyleAnalysis, error)
	CreateStyleAnalysis(ctx context.Context, in *models.InsertStyleAnalysis) (*models.StyleAnalysis, error)

	Backend() string
	Ping(ctx context.Context) error
}
