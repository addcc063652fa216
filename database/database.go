package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pascaretta5/tech-z-one-backend/model"
)

// Connect opens a Postgres-backed gorm session. TranslateError lets
// handlers detect unique-constraint violations (duplicate emails) as
// gorm.ErrDuplicatedKey regardless of driver.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// Migrate creates the user, products, basket and products_basket tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.User{}, &model.Product{}, &model.Basket{})
}
