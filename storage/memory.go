package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"stylistapi/languageutil"
	"stylistapi/models"
)

type collection[T any] struct {
	name   string
	mu     sync.RWMutex
	lastID atomic.Uint64
	items  map[uint]T
	clone  func(T) T
}

func newCollection[T any](name string, clone func(T) T) *collection[T] {
	return &collection[T]{name: name, items: map[uint]T{}, clone: clone}
}

func (c *collection[T]) insert(build func(id uint) T) T {
	id := uint(c.lastID.Add(1))
	entity := build(id)
	c.mu.Lock()
	c.items[id] = c.clone(entity)
	c.mu.Unlock()
	return entity
}

func (c *collection[T]) get(id uint) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entity, ok := c.items[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %d: %w", c.name, id, ErrNotFound)
	}
	return c.clone(entity), nil
}

// list returns matching entities ordered by id.
func (c *collection[T]) list(keep func(T) bool) []T {
	c.mu.RLock()
	ids := make([]uint, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		entity := c.items[id]
		if keep == nil || keep(entity) {
			out = append(out, c.clone(entity))
		}
	}
	c.mu.RUnlock()
	return out
}

// MemStorage keeps every collection in process memory. It is safe for
// concurrent use.
type MemStorage struct {
	clothingItems *collection[models.ClothingItem]
	outfits       *collection[models.Outfit]
	styleGuides   *collection[models.StyleGuide]
	colorPalettes *collection[models.ColorPalette]
	analyses      *collection[models.StyleAnalysis]
	now           func() time.Time
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		clothingItems: newCollection("clothing item", models.ClothingItem.Clone),
		outfits:       newCollection("outfit", models.Outfit.Clone),
		styleGuides:   newCollection("style guide", models.StyleGuide.Clone),
		colorPalettes: newCollection("color palette", models.ColorPalette.Clone),
		analyses:      newCollection("style analysis", models.StyleAnalysis.Clone),
		now:           time.Now,
	}
}

func (s *MemStorage) Backend() string {
	return "memory"
}

func (s *MemStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemStorage) ListClothingItems(ctx context.Context) ([]models.ClothingItem, error) {
	return s.clothingItems.list(nil), ctx.Err()
}

func (s *MemStorage) ListClothingItemsByCategory(ctx context.Context, category string) ([]models.ClothingItem, error) {
	return s.clothingItems.list(func(item models.ClothingItem) bool {
		return languageutil.EqualFold(string(item.Category), category)
	}), ctx.Err()
}

func (s *MemStorage) GetClothingItem(ctx context.Context, id uint) (*models.ClothingItem, error) {
	item, err := s.clothingItems.get(id)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MemStorage) CreateClothingItem(ctx context.Context, in *models.InsertClothingItem) (*models.ClothingItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	item := s.clothingItems.insert(func(id uint) models.ClothingItem {
		item := models.NewClothingItem(in)
		item.ID = id
		return item
	})
	return &item, nil
}

func (s *MemStorage) ListOutfits(ctx context.Context) ([]models.Outfit, error) {
	return s.outfits.list(nil), ctx.Err()
}

func (s *MemStorage) ListOutfitsByCategory(ctx context.Context, category string) ([]models.Outfit, error) {
	return s.outfits.list(func(outfit models.Outfit) bool {
		return languageutil.EqualFold(string(outfit.Category), category)
	}), ctx.Err()
}

func (s *MemStorage) GetOutfit(ctx context.Context, id uint) (*models.Outfit, error) {
	outfit, err := s.outfits.get(id)
	if err != nil {
		return nil, err
	}
	return &outfit, nil
}

func (s *MemStorage) CreateOutfit(ctx context.Context, in *models.InsertOutfit) (*models.Outfit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	outfit := s.outfits.insert(func(id uint) models.Outfit {
		outfit := models.NewOutfit(in)
		outfit.ID = id
		return outfit
	})
	return &outfit, nil
}

func (s *MemStorage) ListStyleGuides(ctx context.Context) ([]models.StyleGuide, error) {
	return s.styleGuides.list(nil), ctx.Err()
}

func (s *MemStorage) GetStyleGuide(ctx context.Context, id uint) (*models.StyleGuide, error) {
	guide, err := s.styleGuides.get(id)
	if err != nil {
		return nil, err
	}
	return &guide, nil
}

func (s *MemStorage) CreateStyleGuide(ctx context.Context, in *models.InsertStyleGuide) (*models.StyleGuide, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	guide := s.styleGuides.insert(func(id uint) models.StyleGuide {
		guide := models.NewStyleGuide(in)
		guide.ID = id
		return guide
	})
	return &guide, nil
}

func (s *MemStorage) ListColorPalettes(ctx context.Context) ([]models.ColorPalette, error) {
	return s.colorPalettes.list(nil), ctx.Err()
}

func (s *MemStorage) GetColorPalette(ctx context.Context, id uint) (*models.ColorPalette, error) {
	palette, err := s.colorPalettes.get(id)
	if err != nil {
		return nil, err
	}
	return &palette, nil
}

func (s *MemStorage) CreateColorPalette(ctx context.Context, in *models.InsertColorPalette) (*models.ColorPalette, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	palette := s.colorPalettes.insert(func(id uint) models.ColorPalette {
		palette := models.NewColorPalette(in)
		palette.ID = id
		return palette
	})
	return &palette, nil
}

func (s *MemStorage) ListStyleAnalyses(ctx context.Context) ([]models.StyleAnalysis, error) {
	analyses := s.analyses.list(nil)
	SortAnalysesNewestFirst(analyses)
	return analyses, ctx.Err()
}

func (s *MemStorage) GetStyleAnalysis(ctx context.Context, id uint) (*models.StyleAnalysis, error) {
	analysis, err := s.analyses.get(id)
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (s *MemStorage) CreateStyleAnalysis(ctx context.Context, in *models.InsertStyleAnalysis) (*models.StyleAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	analysis := s.analyses.insert(func(id uint) models.StyleAnalysis {
		analysis := models.NewStyleAnalysis(in, s.now())
		analysis.ID = id
		return analysis
	})
	return &analysis, nil
}

// SortAnalysesNewestFirst orders by createdAt descending, newer ids first on ties.
func SortAnalysesNewestFirst(analyses []models.StyleAnalysis) {
	sort.SliceStable(analyses, func(i, j int) bool {
		if analyses[i].CreatedAt.Equal(analyses[j].CreatedAt) {
			return analyses[i].ID > analyses[j].ID
		}
		return analyses[i].CreatedAt.After(analyses[j].CreatedAt)
	})
}
