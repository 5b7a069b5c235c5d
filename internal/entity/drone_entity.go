package entity

import (
	"time"

	"github.com/google/uuid"
)

type Drone struct {
	Id                uuid.UUID
	LocationLatitude  float64
	LocationLongitude float64
	PackageDetails    map[string]interface{}
	UrgencyLevel      string
	AssignedPilotId   *uuid.UUID
	AdditionalNote    string
	Status            string
	IsDeleted         bool
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

type FleetStatistics struct {
	Id                             uuid.UUID
	Month                          time.Time
	NumberOfActiveDrones           int
	NumberOfSuccessfulDeliveries   int
	NumberOfUnsuccessfulDeliveries int
	AverageResponseTime            float64
	CreatedAt                      time.Time
	UpdatedAt                      *time.Time
}
