// Command create-admin seeds or resets a moderator account.
package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"vote-monitor-api/config"
	"vote-monitor-api/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var (
		username string
		password string
		role     string
	)

	flag.StringVar(&username, "username", "", "moderator username (required)")
	flag.StringVar(&password, "password", "", "moderator password, at least 8 characters (required)")
	flag.StringVar(&role, "role", "admin", "account role")
	flag.Parse()

	if username == "" || password == "" {
		log.Fatal("both -username and -password are required")
	}
	if len(password) < 8 {
		log.Fatal("password must be at least 8 characters")
	}

	config.InitDB()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var admin models.Admin
	err = config.DB.Where("username = ?", username).First(&admin).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		admin = models.Admin{
			Username:     username,
			PasswordHash: string(hash),
			Role:         role,
			IsActive:     true,
		}
		if err := config.DB.Create(&admin).Error; err != nil {
			log.Fatalf("failed to create admin: %v", err)
		}
		log.Printf("Admin user %s created successfully", username)
	case err != nil:
		log.Fatalf("failed to query admins: %v", err)
	default:
		updates := map[string]interface{}{
			"password_hash": string(hash),
			"updated_at":    time.Now(),
		}
		if err := config.DB.Model(&admin).Updates(updates).Error; err != nil {
			log.Fatalf("failed to update admin: %v", err)
		}
		log.Printf("Password for admin user %s updated", username)
	}

	log.Println("Please store these credentials securely")
}
