package main

import (
	"flag"

	"clinic-admin-api/config"
	"clinic-admin-api/internal/domain/entity"
	"clinic-admin-api/internal/infrastructure/database"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Creates or updates the database schema. Safe to run repeatedly.
func main() {
	envFile := flag.String("env", ".env", "path to env file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		logrus.Warnf("No env file loaded from %s, relying on environment", *envFile)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.Clinic{},
		&entity.Doctor{},
		&entity.Patient{},
		&entity.Appointment{},
		&entity.Feedback{},
		&entity.FeeChangeRequest{},
		&entity.AuditLog{},
	)
	if err != nil {
		logrus.Fatalf("Migration failed: %v", err)
	}

	logrus.Info("Migration complete")
}
