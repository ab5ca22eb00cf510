package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/helpdesk/backend/internal/db"
	"github.com/helpdesk/backend/internal/models"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// UserData represents the structure of users in the JSON file
type UserData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// JSONData represents the structure of the JSON files
type JSONData struct {
	Users        []UserData `json:"users"`
	Tags         []string   `json:"tags"`
	CustomFields []struct {
		Name      string `json:"name"`
		FieldType string `json:"fieldType"`
	} `json:"customFields"`
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Connect to database
	db.Connect()

	// Run migrations first
	log.Println("Running database migrations...")
	db.AutoMigrate()

	// Seed database with sample data
	log.Println("Seeding database with sample data...")

	data, err := loadSeedData()
	if err != nil {
		log.Fatalf("Error reading seed data: %v", err)
	}

	if err := seedUsers(data.Users); err != nil {
		log.Printf("Error seeding users: %v", err)
	}
	if err := seedTags(data.Tags); err != nil {
		log.Printf("Error seeding tags: %v", err)
	}
	if err := seedCustomFields(data); err != nil {
		log.Printf("Error seeding custom fields: %v", err)
	}

	log.Println("✅ Database seeding completed successfully!")
}

func loadSeedData() (*JSONData, error) {
	raw, err := os.ReadFile("data/seed.json")
	if err != nil {
		return nil, err
	}

	var data JSONData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func seedUsers(users []UserData) error {
	for _, userData := range users {
		// Hash password
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Error hashing password for %s: %v", userData.Email, err)
			continue
		}

		// Map role string to UserRole enum
		var role models.UserRole
		switch userData.Role {
		case "admin":
			role = models.RoleAdmin
		case "worker":
			role = models.RoleWorker
		case "customer":
			role = models.RoleCustomer
		default:
			log.Printf("Unknown role %s for user %s, defaulting to customer", userData.Role, userData.Email)
			role = models.RoleCustomer
		}

		profile := models.Profile{
			Email:    userData.Email,
			Password: string(hashedPassword),
			Role:     role,
		}
		if userData.FullName != "" {
			fullName := userData.FullName
			profile.FullName = &fullName
		}

		// Check if user already exists
		var existing models.Profile
		if err := db.DB.Where("email = ?", profile.Email).First(&existing).Error; err != nil {
			if err := db.DB.Create(&profile).Error; err != nil {
				log.Printf("Error creating user %s: %v", profile.Email, err)
			} else {
				log.Printf("✅ Created user: %s (%s)", profile.Email, profile.Role)
			}
		} else {
			log.Printf("⚠️  User already exists: %s", profile.Email)
		}
	}

	return nil
}

func seedTags(names []string) error {
	for _, name := range names {
		var existing models.Tag
		if err := db.DB.Where("name = ?", name).First(&existing).Error; err != nil {
			if err := db.DB.Create(&models.Tag{Name: name}).Error; err != nil {
				log.Printf("Error creating tag %s: %v", name, err)
			} else {
				log.Printf("✅ Created tag: %s", name)
			}
		} else {
			log.Printf("⚠️  Tag already exists: %s", name)
		}
	}
	return nil
}

func seedCustomFields(data *JSONData) error {
	for _, fieldData := range data.CustomFields {
		if !models.ValidFieldType(fieldData.FieldType) {
			log.Printf("Unknown field type %s for field %s, skipping", fieldData.FieldType, fieldData.Name)
			continue
		}

		var existing models.CustomField
		if err := db.DB.Where("name = ?", fieldData.Name).First(&existing).Error; err != nil {
			field := models.CustomField{
				Name:      fieldData.Name,
				FieldType: models.CustomFieldType(fieldData.FieldType),
			}
			if err := db.DB.Create(&field).Error; err != nil {
				log.Printf("Error creating custom field %s: %v", fieldData.Name, err)
			} else {
				log.Printf("✅ Created custom field: %s (%s)", field.Name, field.FieldType)
			}
		} else {
			log.Printf("⚠️  Custom field already exists: %s", fieldData.Name)
		}
	}
	return nil
}
