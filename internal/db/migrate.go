package db

import (
	"secret_santa/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Structured logging

	"gorm.io/gorm" // GORM ORM library
)

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := db.AutoMigrate(&domain.User{}, &domain.Game{}, &domain.WishlistItem{}); err != nil {
		return err // Let the caller decide how fatal this is
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}
