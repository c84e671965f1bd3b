package main

import (
	"log"

	"github.com/jobsight/backend/internal/database"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	database.Connect()

	// Verify the connection actually works before touching the schema.
	sqlDB, err := database.DB.DB()
	if err != nil {
		log.Fatal("Could not get database handle:", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatal("Database unreachable:", err)
	}

	log.Println("Applying schema migrations...")
	database.AutoMigrate()

	log.Println("✅ Schema is up to date")
}
