package models

// StyleGuide categories are editorial topics ("Color Theory", "Formal Wear")
// rather than the closed clothing categories.
type StyleGuide struct {
	JsonModel
	Title       string  `gorm:"type:text;not null" json:"title"`
	Category    string  `gorm:"type:text;not null" json:"category"`
	ImageURL    string  `gorm:"type:text;not null" json:"imageUrl"`
	Description string  `gorm:"type:text;not null" json:"description"`
	ReadTime    *string `gorm:"type:text" json:"readTime"`
	Content     *string `gorm:"type:text" json:"content"`
}

type InsertStyleGuide struct {
	Title       string  `json:"title" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	ImageURL    string  `json:"imageUrl" validate:"required"`
	Description string  `json:"description" validate:"required"`
	ReadTime    *string `json:"readTime"`
	Content     *string `json:"content"`
}

func NewStyleGuide(in *InsertStyleGuide) StyleGuide {
	return StyleGuide{
		Title:       in.Title,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Description: in.Description,
		ReadTime:    cloneStringPtr(in.ReadTime),
		Content:     cloneStringPtr(in.Content),
	}
}

func (m StyleGuide) Clone() StyleGuide {
	m.ReadTime = cloneStringPtr(m.ReadTime)
	m.Content = cloneStringPtr(m.Content)
	return m
}
