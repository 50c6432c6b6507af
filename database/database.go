package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"convo-backend/models"
)

// Open connects to PostgreSQL with the given DSN.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate brings the schema up to date for all entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Conversation{}, &models.Message{})
}
