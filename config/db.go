package config

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"querystack/models"
)

// InitDB opens the Postgres connection described by the environment and
// migrates the schema.
func InitDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		EnvOr("DB_HOST", "localhost"),
		EnvOr("DB_PORT", "5432"),
		EnvOr("DB_USER", "postgres"),
		EnvOr("DB_PASSWORD", "postgres"),
		EnvOr("DB_NAME", "querystack"),
		EnvOr("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		Logger.WithError(err).Fatal("Failed to connect to database")
	}

	if err := MigrateModels(db); err != nil {
		Logger.WithError(err).Fatal("Failed to migrate database schema")
	}

	return db
}

// MigrateModels runs the auto-migration for every entity. Shared with the
// test suites, which migrate an in-memory database.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Question{},
		&models.Answer{},
		&models.Comment{},
		&models.QuestionVote{},
		&models.QuestionView{},
	)
}

// EnvOr returns the environment value for key, or the fallback when unset.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
