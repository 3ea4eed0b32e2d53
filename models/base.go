package models

type JsonModel struct {
	ID uint `gorm:"primarykey" json:"id"`
}

// ResourceKind names one of the persisted collections.
type ResourceKind string

const (
	KindClothingItem  ResourceKind = "clothing_item"
	KindOutfit        ResourceKind = "outfit"
	KindStyleGuide    ResourceKind = "style_guide"
	KindColorPalette  ResourceKind = "color_palette"
	KindStyleAnalysis ResourceKind = "style_analysis"
)

func StrPointer(s string) *string {
	return &s
}

// OptionalString maps an empty or missing value to nil.
func OptionalString(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func cloneStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
