package models

import "github.com/lib/pq"

type Outfit struct {
	JsonModel
	Name        string         `gorm:"type:text;not null" json:"name"`
	Category    Category       `gorm:"type:text;not null;index" json:"category"`
	ImageURL    string         `gorm:"type:text;not null" json:"imageUrl"`
	Description *string        `gorm:"type:text" json:"description"`
	MatchScore  *string        `gorm:"type:text" json:"matchScore"` // Perfect Match, Great Match, Good Match
	Colors      pq.StringArray `gorm:"type:text[];not null" json:"colors"`
}

type InsertOutfit struct {
	Name        string   `json:"name" validate:"required"`
	Category    Category `json:"category" validate:"required,category"`
	ImageURL    string   `json:"imageUrl" validate:"required"`
	Description *string  `json:"description"`
	MatchScore  *string  `json:"matchScore"`
	Colors      []string `json:"colors" validate:"required,listmin"`
}

func (in *InsertOutfit) normalize() {
	if c, ok := ParseCategory(string(in.Category)); ok {
		in.Category = c
	}
}

func NewOutfit(in *InsertOutfit) Outfit {
	return Outfit{
		Name:        in.Name,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Description: cloneStringPtr(in.Description),
		MatchScore:  cloneStringPtr(in.MatchScore),
		Colors:      cloneStrings(in.Colors),
	}
}

func (m Outfit) Clone() Outfit {
	m.Description = cloneStringPtr(m.Description)
	m.MatchScore = cloneStringPtr(m.MatchScore)
	m.Colors = cloneStrings(m.Colors)
	return m
}
