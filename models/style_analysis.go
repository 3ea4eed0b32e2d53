package models

import (
	"time"

	"github.com/lib/pq"
)

type StyleAnalysis struct {
	JsonModel
	// the submitted photo exactly as received, usually a data URL
	ImageURL             string         `gorm:"type:text;not null" json:"imageUrl"`
	BodyType             string         `gorm:"type:text;not null" json:"bodyType"`
	SkinTone             string         `gorm:"type:text;not null" json:"skinTone"`
	CurrentStyle         *string        `gorm:"type:text" json:"currentStyle"`
	RecommendedStyles    pq.StringArray `gorm:"type:text[];not null" json:"recommendedStyles"`
	ColorRecommendations pq.StringArray `gorm:"type:text[];not null" json:"colorRecommendations"`
	OutfitSuggestions    pq.StringArray `gorm:"type:text[];not null" json:"outfitSuggestions"`
	ImprovementTips      pq.StringArray `gorm:"type:text[];not null" json:"improvementTips"`
	CreatedAt            time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

func (StyleAnalysis) TableName() string {
	return "style_analysis"
}

type InsertStyleAnalysis struct {
	ImageURL             string   `json:"imageUrl" validate:"required"`
	BodyType             string   `json:"bodyType" validate:"required"`
	SkinTone             string   `json:"skinTone" validate:"required"`
	CurrentStyle         *string  `json:"currentStyle"`
	RecommendedStyles    []string `json:"recommendedStyles" validate:"required,listmin"`
	ColorRecommendations []string `json:"colorRecommendations" validate:"required,listmin"`
	OutfitSuggestions    []string `json:"outfitSuggestions" validate:"required,listmin"`
	ImprovementTips      []string `json:"improvementTips" validate:"required,listmin"`
}

func (in *InsertStyleAnalysis) normalize() {
	in.CurrentStyle = OptionalString(in.CurrentStyle)
}

// NewStyleAnalysis stamps createdAt at microsecond precision so the value
// survives a round trip through a postgres timestamp column unchanged.
func NewStyleAnalysis(in *InsertStyleAnalysis, now time.Time) StyleAnalysis {
	return StyleAnalysis{
		ImageURL:             in.ImageURL,
		BodyType:             in.BodyType,
		SkinTone:             in.SkinTone,
		CurrentStyle:         cloneStringPtr(OptionalString(in.CurrentStyle)),
		RecommendedStyles:    cloneStrings(in.RecommendedStyles),
		ColorRecommendations: cloneStrings(in.ColorRecommendations),
		OutfitSuggestions:    cloneStrings(in.OutfitSuggestions),
		ImprovementTips:      cloneStrings(in.ImprovementTips),
		CreatedAt:            now.UTC().Truncate(time.Microsecond),
	}
}

func (m StyleAnalysis) Clone() StyleAnalysis {
	m.CurrentStyle = cloneStringPtr(m.CurrentStyle)
	m.RecommendedStyles = cloneStrings(m.RecommendedStyles)
	m.ColorRecommendations = cloneStrings(m.ColorRecommendations)
	m.OutfitSuggestions = cloneStrings(m.OutfitSuggestions)
	m.ImprovementTips = cloneStrings(m.ImprovementTips)
	return m
}
