package mapper

import (
	"drone-response-be/internal/entity"
	"drone-response-be/internal/model"

	"gorm.io/datatypes"
)

type DroneMapper struct{}

func NewDroneMapper() *DroneMapper {
	return &DroneMapper{}
}

func (m *DroneMapper) ToEntity(d *model.Drone) *entity.Drone {
	if d == nil {
		return nil
	}

	return &entity.Drone{
		Id:                d.Id,
		LocationLatitude:  d.LocationLatitude,
		LocationLongitude: d.LocationLongitude,
		PackageDetails:    map[string]interface{}(d.PackageDetails),
		UrgencyLevel:      d.UrgencyLevel,
		AssignedPilotId:   d.AssignedPilotId,
		AdditionalNote:    d.AdditionalNote,
		Status:            d.Status,
		IsDeleted:         d.IsDeleted,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         timePtr(d.UpdatedAt),
	}
}

func (m *DroneMapper) ToModel(d *entity.Drone) *model.Drone {
	if d == nil {
		return nil
	}

	return &model.Drone{
		Id:                d.Id,
		LocationLatitude:  d.LocationLatitude,
		LocationLongitude: d.LocationLongitude,
		PackageDetails:    datatypes.JSONMap(d.PackageDetails),
		UrgencyLevel:      d.UrgencyLevel,
		AssignedPilotId:   d.AssignedPilotId,
		AdditionalNote:    d.AdditionalNote,
		Status:            d.Status,
		IsDeleted:         d.IsDeleted,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         timeVal(d.UpdatedAt),
	}
}

func (m *DroneMapper) ToEntities(models []*model.Drone) []*entity.Drone {
	entities := make([]*entity.Drone, len(models))
	for i, d := range models {
		entities[i] = m.ToEntity(d)
	}
	return entities
}

func (m *DroneMapper) FleetStatisticsToEntity(s *model.FleetStatistics) *entity.FleetStatistics {
	if s == nil {
		return nil
	}

	return &entity.FleetStatistics{
		Id:                             s.Id,
		Month:                          s.Month,
		NumberOfActiveDrones:           s.NumberOfActiveDrones,
		NumberOfSuccessfulDeliveries:   s.NumberOfSuccessfulDeliveries,
		NumberOfUnsuccessfulDeliveries: s.NumberOfUnsuccessfulDeliveries,
		AverageResponseTime:            s.AverageResponseTime,
		CreatedAt:                      s.CreatedAt,
		UpdatedAt:                      timePtr(s.UpdatedAt),
	}
}

func (m *DroneMapper) FleetStatisticsToModel(s *entity.FleetStatistics) *model.FleetStatistics {
	if s == nil {
		return nil
	}

	return &model.FleetStatistics{
		Id:                             s.Id,
		Month:                          s.Month,
		NumberOfActiveDrones:           s.NumberOfActiveDrones,
		NumberOfSuccessfulDeliveries:   s.NumberOfSuccessfulDeliveries,
		NumberOfUnsuccessfulDeliveries: s.NumberOfUnsuccessfulDeliveries,
		AverageResponseTime:            s.AverageResponseTime,
		CreatedAt:                      s.CreatedAt,
		UpdatedAt:                      timeVal(s.UpdatedAt),
	}
}
