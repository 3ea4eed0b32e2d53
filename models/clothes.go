package models

import "github.com/lib/pq"

type ClothingItem struct {
	JsonModel
	Name        string         `gorm:"type:text;not null" json:"name"`
	Category    Category       `gorm:"type:text;not null;index" json:"category"`
	Type        ClothingType   `gorm:"type:text;not null" json:"type"` // top, bottom, footwear, accessory
	ImageURL    string         `gorm:"type:text;not null" json:"imageUrl"`
	Colors      pq.StringArray `gorm:"type:text[];not null" json:"colors"`
	Description *string        `gorm:"type:text" json:"description"`
}

type InsertClothingItem struct {
	Name        string       `json:"name" validate:"required"`
	Category    Category     `json:"category" validate:"required,category"`
	Type        ClothingType `json:"type" validate:"required,clothingtype"`
	ImageURL    string       `json:"imageUrl" validate:"required"`
	Colors      []string     `json:"colors" validate:"required,listmin"`
	Description *string      `json:"description"`
}

func (in *InsertClothingItem) normalize() {
	if c, ok := ParseCategory(string(in.Category)); ok {
		in.Category = c
	}
	if t, ok := ParseClothingType(string(in.Type)); ok {
		in.Type = t
	}
}

func NewClothingItem(in *InsertClothingItem) ClothingItem {
	return ClothingItem{
		Name:        in.Name,
		Category:    in.Category,
		Type:        in.Type,
		ImageURL:    in.ImageURL,
		Colors:      cloneStrings(in.Colors),
		Description: cloneStringPtr(in.Description),
	}
}

func (m ClothingItem) Clone() ClothingItem {
	m.Colors = cloneStrings(m.Colors)
	m.Description = cloneStringPtr(m.Description)
	return m
}
