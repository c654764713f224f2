package config

import (
	"fmt"
	"strings"

	"github.com/Govind-619/PaySphere/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB establishes the database connection for the given configuration and
// ensures the schema exists. Postgres URLs get the postgres driver; anything
// else is treated as a SQLite file path or DSN.
func InitDB(config *Config) error {
	db, err := openDatabase(config.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = db

	// Additive-only schema creation; safe to run on every startup.
	if err := DB.AutoMigrate(&models.Payment{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

func openDatabase(databaseURL string) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return gorm.Open(postgres.Open(databaseURL), gormConfig)
	}

	dsn := strings.TrimPrefix(databaseURL, "sqlite://")
	if !strings.Contains(dsn, "?") {
		dsn += "?_busy_timeout=5000"
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return nil, err
	}

	// SQLite handles one writer at a time; a single pooled connection keeps
	// concurrent request handlers from tripping over each other.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// PingDB runs a trivial query against the given session to verify the store
// is reachable.
func PingDB(db *gorm.DB) error {
	var one int
	return db.Raw("SELECT 1").Scan(&one).Error
}
