package dbhelper

import (
	"fmt"

	"stylistapi/models"

	"gorm.io/gorm"
)

var tables = []interface{}{
	&models.ClothingItem{},
	&models.Outfit{},
	&models.StyleGuide{},
	&models.ColorPalette{},
	&models.StyleAnalysis{},
}

func MigrateAll(db *gorm.DB) error {
	for _, model := range tables {
		if err := Migrate(db, model); err != nil {
			return err
		}
	}
	return nil
}

func Migrate(db *gorm.DB, model interface{}) error {
	if err := db.AutoMigrate(model); err != nil {
		return fmt.Errorf("migrate %T: %w", model, err)
	}
	return nil
}

// SetupCleaner empties every table. Sequences are left alone so ids keep
// increasing across tests.
func SetupCleaner(db *gorm.DB) func() {
	return func() {
		for _, model := range tables {
			db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model)
		}
	}
}
