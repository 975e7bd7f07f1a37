package database

import (
	"fmt"
	"log"
	"os"

	"taverne-catalog/internal/domain/catalog"
	"taverne-catalog/internal/domain/taxonomy"
	"taverne-catalog/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	// TranslateError is required so unique-index violations surface as
	// gorm.ErrDuplicatedKey (the state/impression number retry depends on it).
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// ✅ Auto-migrate all domain models
	if err := DB.AutoMigrate(
		// core
		&users.User{},

		// taxonomies
		&taxonomy.Term{},

		// catalog
		&catalog.Plate{},
		&catalog.State{},
		&catalog.Impression{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
