package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Drone struct {
	Id                uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LocationLatitude  float64           `gorm:"type:decimal(9,6);not null"`
	LocationLongitude float64           `gorm:"type:decimal(9,6);not null"`
	PackageDetails    datatypes.JSONMap `gorm:"type:jsonb"`
	UrgencyLevel      string            `gorm:"type:varchar(10);not null;default:'Low'"`
	AssignedPilotId   *uuid.UUID        `gorm:"type:uuid;index"`
	AdditionalNote    string            `gorm:"type:text"`
	Status            string            `gorm:"type:varchar(15);not null;default:'Active'"`
	IsDeleted         bool              `gorm:"not null;default:false;index"`
	CreatedAt         time.Time         `gorm:"autoCreateTime;index"`
	UpdatedAt         time.Time         `gorm:"autoUpdateTime"`
}

func (Drone) TableName() string {
	return "drones"
}
