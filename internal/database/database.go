package database

import (
	"fmt"
	"log"
	"os"

	"github.com/jobsight/backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect initializes the database connection. DATABASE_URL takes precedence;
// otherwise the connection string is assembled from the individual DB_* vars.
func Connect() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_SSLMODE"),
		)
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})

	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connected successfully")
}

// AutoMigrate runs database migrations
func AutoMigrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Business{},
		&models.BusinessMember{},

		&models.Client{},
		&models.Project{},
		&models.Crew{},
		&models.CrewMember{},

		&models.DailyLog{},
		&models.DailyLogMaterial{},
		&models.DailyLogEquipment{},

		&models.Task{},
		&models.Milestone{},
		&models.Issue{},

		&models.Equipment{},
		&models.EquipmentAssignment{},

		&models.Invoice{},
		&models.Payment{},
	)

	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database migrated successfully")
}
