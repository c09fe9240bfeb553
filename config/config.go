package config

import (
	"log"
	"os"

	"github.com/mahidrahman375/coffee-shop/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Load reads .env if present; real env vars always win.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
}

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the SQLite database and migrates the schema. The handle is
// returned to the caller and passed down explicitly; nothing in the
// codebase holds it as package state.
func InitDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Table{},
		&models.MenuItem{},
		&models.Ingredient{},
		&models.ItemIngredient{},
		&models.Order{},
		&models.OrderDetail{},
		&models.Customer{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
