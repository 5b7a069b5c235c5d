package main

import (
	"log"
	"os"
	"time"

	"drone-response-be/internal/constant"
	"drone-response-be/internal/model"
	"drone-response-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

// Seeds a small demo fleet so the chatbot has drones to talk about.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	drones := []model.Drone{
		{
			Id:                uuid.New(),
			LocationLatitude:  -6.2088,
			LocationLongitude: 106.8456,
			PackageDetails:    datatypes.JSONMap{"contents": "medical supplies", "weight_kg": 4.5},
			UrgencyLevel:      constant.UrgencyCritical,
			AdditionalNote:    "Flood response, zone A7",
			Status:            constant.DroneStatusActive,
			CreatedAt:         time.Now(),
		},
		{
			Id:                uuid.New(),
			LocationLatitude:  -6.9175,
			LocationLongitude: 107.6191,
			PackageDetails:    datatypes.JSONMap{"contents": "water purification kits", "weight_kg": 6.0},
			UrgencyLevel:      constant.UrgencyHigh,
			AdditionalNote:    "Earthquake relief, camp B2",
			Status:            constant.DroneStatusActive,
			CreatedAt:         time.Now(),
		},
		{
			Id:                uuid.New(),
			LocationLatitude:  -7.7956,
			LocationLongitude: 110.3695,
			PackageDetails:    datatypes.JSONMap{"contents": "food rations", "weight_kg": 8.2},
			UrgencyLevel:      constant.UrgencyMedium,
			Status:            constant.DroneStatusMaintenance,
			CreatedAt:         time.Now(),
		},
		{
			Id:                uuid.New(),
			LocationLatitude:  -8.6705,
			LocationLongitude: 115.2126,
			PackageDetails:    datatypes.JSONMap{"contents": "communication equipment", "weight_kg": 2.1},
			UrgencyLevel:      constant.UrgencyLow,
			Status:            constant.DroneStatusInactive,
			CreatedAt:         time.Now(),
		},
	}

	for _, drone := range drones {
		if err := db.Create(&drone).Error; err != nil {
			log.Printf("Warn: Failed to seed drone: %v", err)
			continue
		}
		log.Printf("Seeded drone %s (%s, %s)", drone.Id, drone.Status, drone.UrgencyLevel)
	}

	log.Println("Seeding complete.")
}
