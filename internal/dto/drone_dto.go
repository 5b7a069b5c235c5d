package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDroneRequest struct {
	LocationLatitude  float64                `json:"location_latitude" validate:"min=-90,max=90"`
	LocationLongitude float64                `json:"location_longitude" validate:"min=-180,max=180"`
	PackageDetails    map[string]interface{} `json:"package_details"`
	UrgencyLevel      string                 `json:"urgency_level" validate:"omitempty,oneof=Low Medium High Critical"`
	AssignedPilotId   *uuid.UUID             `json:"assigned_pilot_id"`
	AdditionalNote    string                 `json:"additional_note"`
	Status            string                 `json:"status" validate:"omitempty,oneof=Active 'In Maintenance' Inactive"`
}

type UpdateDroneRequest struct {
	LocationLatitude  *float64               `json:"location_latitude" validate:"omitempty,min=-90,max=90"`
	LocationLongitude *float64               `json:"location_longitude" validate:"omitempty,min=-180,max=180"`
	PackageDetails    map[string]interface{} `json:"package_details"`
	UrgencyLevel      *string                `json:"urgency_level" validate:"omitempty,oneof=Low Medium High Critical"`
	AssignedPilotId   *uuid.UUID             `json:"assigned_pilot_id"`
	AdditionalNote    *string                `json:"additional_note"`
	Status            *string                `json:"status" validate:"omitempty,oneof=Active 'In Maintenance' Inactive"`
}

type DroneView struct {
	Id                uuid.UUID              `json:"id"`
	LocationLatitude  float64                `json:"location_latitude"`
	LocationLongitude float64                `json:"location_longitude"`
	PackageDetails    map[string]interface{} `json:"package_details"`
	UrgencyLevel      string                 `json:"urgency_level"`
	AssignedPilotId   *uuid.UUID             `json:"assigned_pilot_id,omitempty"`
	AdditionalNote    string                 `json:"additional_note"`
	Status            string                 `json:"status"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         *time.Time             `json:"updated_at"`
}

type ListDronesResponse struct {
	Count  int64        `json:"count"`
	Drones []*DroneView `json:"drones"`
}
