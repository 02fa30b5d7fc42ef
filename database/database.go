package database

import (
	"log"

	"library-app/config"
	"library-app/internal/domain/catalog"
	"library-app/internal/domain/orders"
	"library-app/internal/domain/reviews"
	"library-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB connects to Postgres and migrates every domain model. The handle is
// returned rather than held globally; callers inject it where it is needed.
func InitDB() *gorm.DB {
	dsn := config.DB_URL
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&catalog.Genre{},
		&catalog.Author{},
		&catalog.Book{},
		&users.User{},
		&orders.Order{},
		&orders.OrderItem{},
		&reviews.Review{},
		&reviews.ReviewImage{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	log.Println("Connected and migrated successfully")
	return db
}
