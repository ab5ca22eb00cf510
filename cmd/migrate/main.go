package main

import (
	"log"
	"os"

	"github.com/helpdesk/backend/internal/db"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Create the database itself if it does not exist yet
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		if err := db.EnsureDatabase(databaseURL); err != nil {
			log.Fatalf("Failed to ensure database exists: %v", err)
		}
	}

	// Connect to database
	db.Connect()

	// Run migrations
	log.Println("Running database migrations...")
	db.AutoMigrate()

	log.Println("✅ Database migrations completed successfully!")
}
