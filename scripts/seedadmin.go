package main

import (
	"log"
	"os"

	"lms/config"
	"lms/database"
	"lms/models"

	"golang.org/x/crypto/bcrypt"
)

// Seeds the initial admin account so the admin panel is reachable on a
// fresh database. Email and password come from ADMIN_EMAIL/ADMIN_PASSWORD.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	db := database.Database.Db

	var existing models.User
	if err := db.Where("email = ? AND is_deleted = ?", email, false).First(&existing).Error; err == nil {
		log.Printf("Admin user %s already exists (id %d), nothing to do", email, existing.ID)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hash),
		Role:     "ADMIN",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Printf("Admin user %s created (id %d)", email, admin.ID)
}
