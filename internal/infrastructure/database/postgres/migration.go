// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"log"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// Migration handles database schema migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{db: db}
}

// RunAutoMigrations runs auto migrations for the catalog tables
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database migrations...")

	if err := m.db.AutoMigrate(&catalog.Product{}); err != nil {
		return err
	}

	log.Println("✅ Database migrations completed")
	return nil
}

// SeedInitialData seeds the development catalog when the table is empty
func (m *Migration) SeedInitialData() error {
	var count int64
	if err := m.db.Model(&catalog.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("🌱 Seeding catalog products...")
	products := catalog.SeedProducts()
	return m.db.Create(&products).Error
}
