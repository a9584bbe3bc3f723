package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/Malav2364/calorify/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port string
	DSN  string
}

// Load reads configuration from .env / environment variables.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := Config{
		Port: os.Getenv("PORT"),
		DSN: fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	// The token helpers read JWT_SECRET from the environment on use;
	// fail at startup if it is missing rather than on the first login.
	if os.Getenv("JWT_SECRET") == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// OpenDB connects to Postgres and migrates the schema. The returned handle is
// passed explicitly into services and middleware; there is no package-level DB.
func OpenDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Dish{},
		&models.CalorieHistory{},
	)
	if err != nil {
		return nil, fmt.Errorf("AutoMigrate failed: %w", err)
	}

	return db, nil
}
