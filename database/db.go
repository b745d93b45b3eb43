package database

import (
	"facturador-backend/models"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=5432 sslmode=disable",
		envOr("DB_HOST", "db"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	DB = db
}

func AutoMigrate() {
	DB.AutoMigrate(&models.User{}, &models.KVEntry{})
}

// SeedUser creates the single application user from APP_USER_EMAIL and
// APP_USER_PASSWORD when no user exists yet. This is a single-operator
// system; there is no self-registration.
func SeedUser() {
	var count int64
	DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	email := envOr("APP_USER_EMAIL", "admin@facturador.local")
	password := os.Getenv("APP_USER_PASSWORD")
	if password == "" {
		password = "admin123"
		log.Println("WARNING: APP_USER_PASSWORD not set, using default dev credentials")
	}

	user := models.User{Name: envOr("APP_USER_NAME", "Administrador"), Email: email}
	user.SetPassword(password)
	if err := DB.Create(&user).Error; err != nil {
		log.Fatalf("could not seed application user: %v", err)
	}
	log.Printf("seeded application user %s", email)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
