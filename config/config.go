package config

import (
	"fmt"
	"log"
	"os"

	"github.com/Prashant8008/Fitness-Ai/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port          string
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string
	JWTSecret     string
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          get("PORT", "8080"),
		DBHost:        get("DB_HOST", "localhost"),
		DBUser:        must("DB_USER"),
		DBPassword:    must("DB_PASSWORD"),
		DBName:        must("DB_NAME"),
		DBPort:        get("DB_PORT", "5432"),
		JWTSecret:     must("JWT_SECRET"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   get("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
	}
}

func get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func must(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("missing env %s", key)
	}
	return v
}

// InitDB opens the Postgres connection and migrates the schema.
func InitDB(cfg *Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	return db
}

// Migrate creates/updates the schema. Split out so tests can run it
// against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.WorkoutSchedule{},
		&models.MealPlan{},
		&models.DailyProgress{},
		&models.GoalTracking{},
	)
}
