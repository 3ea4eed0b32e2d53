package dbhelper

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"stylistapi/config"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupDB(cfg config.DatabaseConfig, log *logrus.Logger) (*gorm.DB, error) {
	return Open(postgres.Open(cfg.DSN()), log)
}

// Open connects through dialector, tunes the pool and migrates every table.
func Open(dialector gorm.Dialector, log *logrus.Logger) (*gorm.DB, error) {
	gormConfig := &gorm.Config{}
	if log != nil {
		gormConfig.Logger = logger.New(log, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		})
	}
	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Minute * 5)

	if err := MigrateAll(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// SetupTestDB connects to TEST_DATABASE_URL and skips the test when it is not
// set.
func SetupTestDB(t testing.TB) *gorm.DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}
	db, err := SetupDB(config.DatabaseConfig{URL: url}, nil)
	if err != nil {
		t.Fatalf("setup test database: %v", err)
	}
	return db
}
