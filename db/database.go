package db

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tribunal_hearings_go/models"
)

var DB *gorm.DB

// Initialize opens the sqlite case store with WAL mode for concurrency and
// migrates the case records table
func Initialize(dbPath string, environment string) error {
	logLevel := logger.Info
	if environment == "production" {
		logLevel = logger.Warn
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath+"?_journal_mode=WAL"), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to case store: %w", err)
	}

	if err := DB.AutoMigrate(&models.CaseRecord{}); err != nil {
		return fmt.Errorf("failed to migrate case records: %w", err)
	}

	log.Println("Case store ready (WAL mode enabled)")
	return nil
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
