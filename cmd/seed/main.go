package main

import (
	"flag"

	"clinic-admin-api/config"
	"clinic-admin-api/internal/domain/entity"
	"clinic-admin-api/internal/infrastructure/database"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeds the roles, a default admin account and a couple of clinics so a
// fresh install is usable immediately. Idempotent.
func main() {
	envFile := flag.String("env", ".env", "path to env file")
	adminEmail := flag.String("admin-email", "admin@clinic.local", "email for the default admin account")
	adminPassword := flag.String("admin-password", "changeme123", "password for the default admin account")
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

	if err := seedRoles(db); err != nil {
		logrus.Fatalf("Failed to seed roles: %v", err)
	}
	if err := seedAdmin(db, *adminEmail, *adminPassword); err != nil {
		logrus.Fatalf("Failed to seed admin account: %v", err)
	}
	if err := seedClinics(db); err != nil {
		logrus.Fatalf("Failed to seed clinics: %v", err)
	}

	logrus.Info("Seeding complete")
}

func seedRoles(db *gorm.DB) error {
	roles := []entity.Role{
		{ID: entity.RoleIDAdmin, RoleName: entity.RoleAdmin, Description: "Full dashboard access"},
		{ID: entity.RoleIDStaff, RoleName: entity.RoleStaff, Description: "Day-to-day clinic operations"},
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error
}

func seedAdmin(db *gorm.DB, email, password string) error {
	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logrus.Infof("Admin account %s already exists, skipping", email)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := entity.User{
		RoleID:   entity.RoleIDAdmin,
		Email:    email,
		Password: string(hashed),
		FullName: "Administrator",
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logrus.Infof("Created admin account %s", email)
	return nil
}

func seedClinics(db *gorm.DB) error {
	clinics := []entity.Clinic{
		{Name: "Main Clinic", Address: "Ground floor, main building", Phone: "021-555-0100"},
		{Name: "Pediatrics Wing", Address: "2nd floor, east wing", Phone: "021-555-0101"},
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&clinics).Error
}
