package db

import (
	"fmt"

	"gorm.io/gorm"

	"reviewboard/internal/models"
)

// Migrate applies the schema for all persisted entities. Order matters:
// users first, then the tables holding foreign keys to them.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}
	return conn.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
		&models.Review{},
	)
}
