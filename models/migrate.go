package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AutoMigrate creates or updates every table the service owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Admin{},
		&Tenant{},
		&Reminder{},
		&SystemConfig{},
	)
}

// Seed inserts the default configuration rows and the admin account when
// they are missing. Existing rows are never overwritten.
func Seed(db *gorm.DB, adminUsername, adminPassword string) error {
	for _, cfg := range DefaultConfigs {
		row := cfg
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "config_key"}},
			DoNothing: true,
		}).Create(&row).Error; err != nil {
			return fmt.Errorf("seed config %s: %w", cfg.Key, err)
		}
	}

	if adminUsername == "" {
		return nil
	}
	var existing Admin
	err := db.Where("username = ?", adminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("look up admin: %w", err)
	}
	admin := Admin{Username: adminUsername, Password: adminPassword}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}
