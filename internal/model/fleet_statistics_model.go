package model

import (
	"time"

	"github.com/google/uuid"
)

// FleetStatistics holds one row of fleet performance metrics per month.
type FleetStatistics struct {
	Id                              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Month                           time.Time `gorm:"type:date;not null;uniqueIndex"`
	NumberOfActiveDrones            int       `gorm:"not null;default:0"`
	NumberOfSuccessfulDeliveries    int       `gorm:"not null;default:0"`
	NumberOfUnsuccessfulDeliveries  int       `gorm:"not null;default:0"`
	AverageResponseTime             float64   `gorm:"not null;default:0"` // minutes
	CreatedAt                       time.Time `gorm:"autoCreateTime"`
	UpdatedAt                       time.Time `gorm:"autoUpdateTime"`
}

func (FleetStatistics) TableName() string {
	return "fleet_statistics"
}
