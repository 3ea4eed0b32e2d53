package models

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"stylistapi/languageutil"

	"github.com/go-playground/validator"
)

type Category string

const (
	CategoryFormal         Category = "Formal"
	CategoryCasual         Category = "Casual"
	CategoryBusinessCasual Category = "Business Casual"
	CategoryPartyWear      Category = "Party Wear"
)

var Categories = []Category{CategoryFormal, CategoryCasual, CategoryBusinessCasual, CategoryPartyWear}

// ParseCategory matches value against the known categories ignoring case and
// returns the canonical spelling.
func ParseCategory(value string) (Category, bool) {
	for _, c := range Categories {
		if languageutil.EqualFold(value, string(c)) {
			return c, true
		}
	}
	return "", false
}

func (l *Category) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*l = Category(v)
	case []byte:
		*l = Category(v)
	default:
		return fmt.Errorf("cannot scan %T into Category", value)
	}
	return nil
}

func (l Category) Value() (driver.Value, error) {
	return string(l), nil
}

func ValidateCategory(fl validator.FieldLevel) bool {
	_, ok := ParseCategory(fl.Field().String())
	return ok
}

type ClothingType string

const (
	ClothingTop       ClothingType = "top"
	ClothingBottom    ClothingType = "bottom"
	ClothingFootwear  ClothingType = "footwear"
	ClothingAccessory ClothingType = "accessory"
)

var ClothingTypes = []ClothingType{ClothingTop, ClothingBottom, ClothingFootwear, ClothingAccessory}

func ParseClothingType(value string) (ClothingType, bool) {
	for _, t := range ClothingTypes {
		if languageutil.EqualFold(value, string(t)) {
			return t, true
		}
	}
	return "", false
}

func (l *ClothingType) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*l = ClothingType(v)
	case []byte:
		*l = ClothingType(v)
	default:
		return fmt.Errorf("cannot scan %T into ClothingType", value)
	}
	return nil
}

func (l ClothingType) Value() (driver.Value, error) {
	return string(l), nil
}

func ValidateClothingType(fl validator.FieldLevel) bool {
	_, ok := ParseClothingType(fl.Field().String())
	return ok
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
