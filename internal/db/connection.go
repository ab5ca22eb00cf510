package db

import (
	"fmt"
	"log"
	"os"

	"github.com/helpdesk/backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect initializes the database connection
func Connect() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_SSLMODE"),
		)
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
		// Duplicate-key errors surface as gorm.ErrDuplicatedKey so the tag
		// editor can treat a repeated pair insert as already-done.
		TranslateError: true,
	})

	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("✅ Database connected successfully")
}

// AutoMigrate runs database migrations
func AutoMigrate() {
	// Profiles first: tickets and the side tables reference them.
	if err := DB.AutoMigrate(&models.Profile{}); err != nil {
		log.Printf("Profile migration failed: %v", err)
		return
	}

	if err := DB.AutoMigrate(&models.Tag{}); err != nil {
		log.Printf("Tag migration failed: %v", err)
		return
	}

	if err := DB.AutoMigrate(&models.Ticket{}); err != nil {
		log.Printf("Ticket migration failed: %v", err)
		return
	}

	if err := DB.AutoMigrate(&models.TicketTag{}); err != nil {
		log.Printf("TicketTag migration failed: %v", err)
		return
	}

	if err := DB.AutoMigrate(&models.CustomField{}); err != nil {
		log.Printf("CustomField migration failed: %v", err)
		return
	}

	if err := DB.AutoMigrate(&models.TicketCustomFieldValue{}); err != nil {
		log.Printf("TicketCustomFieldValue migration failed: %v", err)
		return
	}

	if err := DB.AutoMigrate(&models.TicketResponse{}); err != nil {
		log.Printf("TicketResponse migration failed: %v", err)
		return
	}

	if err := DB.AutoMigrate(&models.TicketInternalNote{}); err != nil {
		log.Printf("TicketInternalNote migration failed: %v", err)
		return
	}

	if err := DB.AutoMigrate(&models.TicketFeedback{}); err != nil {
		log.Printf("TicketFeedback migration failed: %v", err)
		return
	}

	log.Println("✅ All database migrations completed successfully")
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
