package models

import "github.com/lib/pq"

type ColorPalette struct {
	JsonModel
	Name        string         `gorm:"type:text;not null" json:"name"`
	Colors      pq.StringArray `gorm:"type:text[];not null" json:"colors"`
	Description *string        `gorm:"type:text" json:"description"`
}

type InsertColorPalette struct {
	Name        string   `json:"name" validate:"required"`
	Colors      []string `json:"colors" validate:"required,listmin"`
	Description *string  `json:"description"`
}

func NewColorPalette(in *InsertColorPalette) ColorPalette {
	return ColorPalette{
		Name:        in.Name,
		Colors:      cloneStrings(in.Colors),
		Description: cloneStringPtr(in.Description),
	}
}

func (m ColorPalette) Clone() ColorPalette {
	m.Colors = cloneStrings(m.Colors)
	m.Description = cloneStringPtr(m.Description)
	return m
}
