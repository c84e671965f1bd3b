package main

import (
	"log"
	"time"

	"github.com/jobsight/backend/internal/database"
	"github.com/jobsight/backend/internal/models"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Connect to database
	database.Connect()

	// Run migrations first
	log.Println("Running database migrations...")
	database.AutoMigrate()

	// Seed database with sample data
	log.Println("Seeding database with sample data...")

	owner, err := seedOwner()
	if err != nil {
		log.Fatalf("Error seeding owner: %v", err)
	}

	business, err := seedBusiness(owner)
	if err != nil {
		log.Fatalf("Error seeding business: %v", err)
	}

	if err := seedProjects(business); err != nil {
		log.Printf("Error seeding projects: %v", err)
	}

	if err := seedCrews(business); err != nil {
		log.Printf("Error seeding crews: %v", err)
	}

	if err := seedEquipment(business); err != nil {
		log.Printf("Error seeding equipment: %v", err)
	}

	log.Println("✅ Database seeding completed successfully!")
}

func seedOwner() (*models.User, error) {
	var existing models.User
	if err := database.DB.Where("email = ?", "owner@jobsight.dev").First(&existing).Error; err == nil {
		log.Printf("⚠️  User already exists: %s", existing.Email)
		return &existing, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:     "owner@jobsight.dev",
		Password:  string(hashedPassword),
		FirstName: "Dana",
		LastName:  "Ferreira",
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	log.Printf("✅ Created user: %s", user.Email)
	return &user, nil
}

func seedBusiness(owner *models.User) (*models.Business, error) {
	var membership models.BusinessMember
	if err := database.DB.Where("user_id = ?", owner.ID).First(&membership).Error; err == nil {
		var existing models.Business
		if err := database.DB.First(&existing, membership.BusinessID).Error; err != nil {
			return nil, err
		}
		log.Printf("⚠️  Business already exists: %s", existing.Name)
		return &existing, nil
	}

	business := models.Business{
		Name:     "Ferreira Construction",
		Industry: "General Contracting",
		Phone:    "555-0142",
		Address:  "880 Industrial Way, Portland, OR",
	}
	if err := database.DB.Create(&business).Error; err != nil {
		return nil, err
	}

	member := models.BusinessMember{
		BusinessID: business.ID,
		UserID:     owner.ID,
		Role:       models.MemberRoleOwner,
	}
	if err := database.DB.Create(&member).Error; err != nil {
		return nil, err
	}

	log.Printf("✅ Created business: %s (owner %s)", business.Name, owner.Email)
	return &business, nil
}

func seedProjects(business *models.Business) error {
	client := models.Client{
		BusinessID:  business.ID,
		Name:        "Main Street Holdings LLC",
		ContactName: "Erin Walsh",
		Email:       "erin@mainstreetholdings.example",
		Phone:       "555-0168",
		Status:      models.ClientStatusActive,
	}

	var existingClient models.Client
	if err := database.DB.Where("business_id = ? AND name = ?", business.ID, client.Name).First(&existingClient).Error; err == nil {
		client = existingClient
		log.Printf("⚠️  Client already exists: %s", client.Name)
	} else if err := database.DB.Create(&client).Error; err != nil {
		return err
	} else {
		log.Printf("✅ Created client: %s", client.Name)
	}

	start := time.Now().AddDate(0, -2, 0)
	projects := []models.Project{
		{
			BusinessID:  business.ID,
			ClientID:    &client.ID,
			Name:        "Main Street Development",
			Description: "Mixed-use building, four floors plus retail at grade.",
			Address:     "114 Main St, Portland, OR",
			Status:      models.ProjectStatusActive,
			StartDate:   &start,
			Budget:      2400000,
		},
		{
			BusinessID:  business.ID,
			Name:        "Oak Ridge Remodel",
			Description: "Kitchen and second-floor remodel.",
			Address:     "47 Oak Ridge Rd, Lake Oswego, OR",
			Status:      models.ProjectStatusActive,
			Budget:      180000,
		},
		{
			BusinessID:  business.ID,
			Name:        "Riverside Office Park",
			Description: "Sitework and foundations for two office shells.",
			Status:      models.ProjectStatusPlanning,
			Budget:      950000,
		},
	}

	for _, project := range projects {
		var existing models.Project
		if err := database.DB.Where("business_id = ? AND name = ?", business.ID, project.Name).First(&existing).Error; err == nil {
			log.Printf("⚠️  Project already exists: %s", project.Name)
			continue
		}
		if err := database.DB.Create(&project).Error; err != nil {
			log.Printf("Error creating project %s: %v", project.Name, err)
		} else {
			log.Printf("✅ Created project: %s", project.Name)
		}
	}

	return nil
}

func seedCrews(business *models.Business) error {
	crews := []models.Crew{
		{
			BusinessID: business.ID,
			Name:       "Framing Crew",
			Specialty:  "Framing",
			LeaderName: "Mike Torres",
			Members: []models.CrewMember{
				{Name: "Mike Torres", Role: "Foreman", Phone: "555-0190"},
				{Name: "Jess Nakamura", Role: "Carpenter"},
				{Name: "Paul Okafor", Role: "Carpenter"},
			},
		},
		{
			BusinessID: business.ID,
			Name:       "Concrete Crew",
			Specialty:  "Flatwork and foundations",
			LeaderName: "Sam Reyes",
			Members: []models.CrewMember{
				{Name: "Sam Reyes", Role: "Foreman", Phone: "555-0177"},
				{Name: "Terry Lindqvist", Role: "Finisher"},
			},
		},
	}

	for _, crew := range crews {
		var existing models.Crew
		if err := database.DB.Where("business_id = ? AND name = ?", business.ID, crew.Name).First(&existing).Error; err == nil {
			log.Printf("⚠️  Crew already exists: %s", crew.Name)
			continue
		}
		if err := database.DB.Create(&crew).Error; err != nil {
			log.Printf("Error creating crew %s: %v", crew.Name, err)
		} else {
			log.Printf("✅ Created crew: %s (%d members)", crew.Name, len(crew.Members))
		}
	}

	return nil
}

func seedEquipment(business *models.Business) error {
	items := []models.Equipment{
		{BusinessID: business.ID, Name: "Excavator CAT 320", Type: "Heavy", SerialNumber: "CAT320-8841", PurchaseCost: 210000},
		{BusinessID: business.ID, Name: "Concrete Mixer", Type: "Medium", SerialNumber: "CM-2207", PurchaseCost: 18500},
		{BusinessID: business.ID, Name: "Scissor Lift", Type: "Medium", SerialNumber: "SL-0093", PurchaseCost: 24000},
	}

	for _, item := range items {
		var existing models.Equipment
		if err := database.DB.Where("business_id = ? AND serial_number = ?", business.ID, item.SerialNumber).First(&existing).Error; err == nil {
			log.Printf("⚠️  Equipment already exists: %s", item.Name)
			continue
		}
		if err := database.DB.Create(&item).Error; err != nil {
			log.Printf("Error creating equipment %s: %v", item.Name, err)
		} else {
			log.Printf("✅ Created equipment: %s", item.Name)
		}
	}

	return nil
}
