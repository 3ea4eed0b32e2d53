package storage

import (
	"context"
	"fmt"
)

// SeedIfEmpty loads the sample catalog unless clothing items already exist.
// It reports whether anything was written.
func SeedIfEmpty(ctx context.Context, s Storage) (bool, error) {
	existing, err := s.ListClothingItems(ctx)
	if err != nil {
		return false, fmt.Errorf("check existing clothing items: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}

	for i := range SampleOutfits {
		if _, err := s.CreateOutfit(ctx, &SampleOutfits[i]); err != nil {
			return false, fmt.Errorf("seed outfit %q: %w", SampleOutfits[i].Name, err)
		}
	}
	for i := range SampleStyleGuides {
		if _, err := s.CreateStyleGuide(ctx, &SampleStyleGuides[i]); err != nil {
			return false, fmt.Errorf("seed style guide %q: %w", SampleStyleGuides[i].Title, err)
		}
	}
	for i := range SampleClothingItems {
		if _, err := s.CreateClothingItem(ctx, &SampleClothingItems[i]); err != nil {
			return false, fmt.Errorf("seed clothing item %q: %w", SampleClothingItems[i].Name, err)
		}
	}
	for i := range SampleColorPalettes {
		if _, err := s.CreateColorPalette(ctx, &SampleColorPalettes[i]); err != nil {
			return false, fmt.Errorf("seed color palette %q: %w", SampleColorPalettes[i].Name, err)
		}
	}
	return true, nil
}
