package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"stylistapi/dbhelper"
	"stylistapi/models"

	"gorm.io/gorm"
)

// DatabaseStorage persists every collection in postgres through gorm. Ids
// come from the table sequences.
type DatabaseStorage struct {
	db  *gorm.DB
	now func() time.Time
}

func NewDatabaseStorage(db *gorm.DB) *DatabaseStorage {
	return &DatabaseStorage{db: db, now: time.Now}
}

func (s *DatabaseStorage) Backend() string {
	return "postgres"
}

func (s *DatabaseStorage) Ping(ctx context.Context) error {
	return dbhelper.Ping(ctx, s.db)
}

func notFound(err error, kind string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
	}
	return err
}

func (s *DatabaseStorage) ListClothingItems(ctx context.Context) ([]models.ClothingItem, error) {
	items := []models.ClothingItem{}
	if err := s.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *DatabaseStorage) ListClothingItemsByCategory(ctx context.Context, category string) ([]models.ClothingItem, error) {
	items := []models.ClothingItem{}
	err := s.db.WithContext(ctx).
		Where("LOWER(category) = LOWER(?)", strings.TrimSpace(category)).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *DatabaseStorage) GetClothingItem(ctx context.Context, id uint) (*models.ClothingItem, error) {
	var item models.ClothingItem
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, notFound(err, "clothing item", id)
	}
	return &item, nil
}

func (s *DatabaseStorage) CreateClothingItem(ctx context.Context, in *models.InsertClothingItem) (*models.ClothingItem, error) {
	item := models.NewClothingItem(in)
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *DatabaseStorage) ListOutfits(ctx context.Context) ([]models.Outfit, error) {
	outfits := []models.Outfit{}
	if err := s.db.WithContext(ctx).Order("id").Find(&outfits).Error; err != nil {
		return nil, err
	}
	return outfits, nil
}

func (s *DatabaseStorage) ListOutfitsByCategory(ctx context.Context, category string) ([]models.Outfit, error) {
	outfits := []models.Outfit{}
	err := s.db.WithContext(ctx).
		Where("LOWER(category) = LOWER(?)", strings.TrimSpace(category)).
		Order("id").
		Find(&outfits).Error
	if err != nil {
		return nil, err
	}
	return outfits, nil
}

func (s *DatabaseStorage) GetOutfit(ctx context.Context, id uint) (*models.Outfit, error) {
	var outfit models.Outfit
	if err := s.db.WithContext(ctx).First(&outfit, id).Error; err != nil {
		return nil, notFound(err, "outfit", id)
	}
	return &outfit, nil
}

func (s *DatabaseStorage) CreateOutfit(ctx context.Context, in *models.InsertOutfit) (*models.Outfit, error) {
	outfit := models.NewOutfit(in)
	if err := s.db.WithContext(ctx).Create(&outfit).Error; err != nil {
		return nil, err
	}
	return &outfit, nil
}

func (s *DatabaseStorage) ListStyleGuides(ctx context.Context) ([]models.StyleGuide, error) {
	guides := []models.StyleGuide{}
	if err := s.db.WithContext(ctx).Order("id").Find(&guides).Error; err != nil {
		return nil, err
	}
	return guides, nil
}

func (s *DatabaseStorage) GetStyleGuide(ctx context.Context, id uint) (*models.StyleGuide, error) {
	var guide models.StyleGuide
	if err := s.db.WithContext(ctx).First(&guide, id).Error; err != nil {
		return nil, notFound(err, "style guide", id)
	}
	return &guide, nil
}

func (s *DatabaseStorage) CreateStyleGuide(ctx context.Context, in *models.InsertStyleGuide) (*models.StyleGuide, error) {
	guide := models.NewStyleGuide(in)
	if err := s.db.WithContext(ctx).Create(&guide).Error; err != nil {
		return nil, err
	}
	return &guide, nil
}

func (s *DatabaseStorage) ListColorPalettes(ctx context.Context) ([]models.ColorPalette, error) {
	palettes := []models.ColorPalette{}
	if err := s.db.WithContext(ctx).Order("id").Find(&palettes).Error; err != nil {
		return nil, err
	}
	return palettes, nil
}

func (s *DatabaseStorage) GetColorPalette(ctx context.Context, id uint) (*models.ColorPalette, error) {
	var palette models.ColorPalette
	if err := s.db.WithContext(ctx).First(&palette, id).Error; err != nil {
		return nil, notFound(err, "color palette", id)
	}
	return &palette, nil
}

func (s *DatabaseStorage) CreateColorPalette(ctx context.Context, in *models.InsertColorPalette) (*models.ColorPalette, error) {
	palette := models.NewColorPalette(in)
	if err := s.db.WithContext(ctx).Create(&palette).Error; err != nil {
		return nil, err
	}
	return &palette, nil
}

func (s *DatabaseStorage) ListStyleAnalyses(ctx context.Context) ([]models.StyleAnalysis, error) {
	analyses := []models.StyleAnalysis{}
	if err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&analyses).Error; err != nil {
		return nil, err
	}
	return analyses, nil
}

func (s *DatabaseStorage) GetStyleAnalysis(ctx context.Context, id uint) (*models.StyleAnalysis, error) {
	var analysis models.StyleAnalysis
	if err := s.db.WithContext(ctx).First(&analysis, id).Error; err != nil {
		return nil, notFound(err, "style analysis", id)
	}
	return &analysis, nil
}

func (s *DatabaseStorage) CreateStyleAnalysis(ctx context.Context, in *models.InsertStyleAnalysis) (*models.StyleAnalysis, error) {
	analysis := models.NewStyleAnalysis(in, s.now())
	if err := s.db.WithContext(ctx).Create(&analysis).Error; err != nil {
		return nil, err
	}
	return &analysis, nil
}
