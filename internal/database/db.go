package database

import (
	"log"

	"kafe-backend/internal/config"
	"kafe-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	if err := InitWithDialector(postgres.Open(cfg.DatabaseDSN)); err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	log.Println("Database connection established, migration done.")
}

// InitWithDialector opens the database on the given dialector and runs
// migrations. Tests use this with an in-memory SQLite dialector.
func InitWithDialector(dialector gorm.Dialector) error {
	var err error

	DB, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return err
	}

	return DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.OpeningHours{},
		&models.DailyContent{},
		&models.AuditLog{},
	)
}
