package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fixtrack-backend/models"
)

// ConnectDB opens the Postgres connection and runs migrations. The handle is
// returned to the caller and passed to services explicitly; there is no
// package-level database state.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the four core tables plus the notification log.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Customer{},
		&models.Repair{},
		&models.Payment{},
		&models.NotificationLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
