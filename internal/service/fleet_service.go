package service

import (
	"context"
	"fmt"
	"time"

	"drone-response-be/internal/constant"
	"drone-response-be/internal/dto"
	"drone-response-be/internal/entity"
	"drone-response-be/internal/repository/specification"
	"drone-response-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IFleetService interface {
	FleetStatus(ctx context.Context) (*dto.FleetStatusResponse, error)
	MonthlyStatistics(ctx context.Context, monthFilter string) (*dto.FleetStatisticsResponse, error)
	RecomputeMonth(ctx context.Context, month time.Time) error
}

type fleetService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFleetService(uowFactory unitofwork.RepositoryFactory) IFleetService {
	return &fleetService{uowFactory: uowFactory}
}

func (s *fleetService) FleetStatus(ctx context.Context) (*dto.FleetStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.DroneRepository().Count(ctx, specification.NotDeleted{})
	if err != nil {
		return nil, err
	}

	byStatus, err := uow.DroneRepository().CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	byUrgency, err := uow.DroneRepository().CountByUrgencyLevel(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.FleetStatusResponse{
		Total:         total,
		ByStatus:      byStatus,
		ByUrgency:     byUrgency,
		CriticalCount: byUrgency[constant.UrgencyCritical],
	}, nil
}

func (s *fleetService) MonthlyStatistics(ctx context.Context, monthFilter string) (*dto.FleetStatisticsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "month", Desc: true},
	}
	if monthFilter != "" {
		month, err := time.Parse("2006-01", monthFilter)
		if err != nil {
			return nil, fmt.Errorf("invalid month filter %q, expected YYYY-MM", monthFilter)
		}
		specs = append(specs, specification.Filter("month", month))
	}

	rows, err := uow.FleetStatisticsRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	months := make([]*dto.MonthlyStatisticsView, 0, len(rows))
	for _, row := range rows {
		months = append(months, &dto.MonthlyStatisticsView{
			Month:                          row.Month.Format("2006-01"),
			NumberOfActiveDrones:           row.NumberOfActiveDrones,
			NumberOfSuccessfulDeliveries:   row.NumberOfSuccessfulDeliveries,
			NumberOfUnsuccessfulDeliveries: row.NumberOfUnsuccessfulDeliveries,
			AverageResponseTime:            row.AverageResponseTime,
		})
	}

	return &dto.FleetStatisticsResponse{Months: months}, nil
}

// RecomputeMonth refreshes the derived columns of one monthly row: the
// active drone count and the average chat response time observed during
// that month. Delivery counters are operator-maintained and preserved.
func (s *fleetService) RecomputeMonth(ctx context.Context, month time.Time) error {
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	uow := s.uowFactory.NewUnitOfWork(ctx)

	activeCount, err := uow.DroneRepository().Count(ctx,
		specification.NotDeleted{},
		specification.ByStatus{Status: constant.DroneStatusActive},
	)
	if err != nil {
		return err
	}

	analytics, err := uow.ChatAnalyticsRepository().FindAll(ctx,
		specification.CreatedBetween{From: monthStart, To: monthEnd},
	)
	if err != nil {
		return err
	}

	var avgResponseTime float64
	if len(analytics) > 0 {
		var sum float64
		for _, row := range analytics {
			sum += row.ResponseTime
		}
		avgResponseTime = sum / float64(len(analytics))
	}

	existing, err := uow.FleetStatisticsRepository().FindOne(ctx,
		specification.Filter("month", monthStart),
	)
	if err != nil {
		return err
	}

	stats := &entity.FleetStatistics{
		Id:                   uuid.New(),
		Month:                monthStart,
		NumberOfActiveDrones: int(activeCount),
		AverageResponseTime:  avgResponseTime,
		CreatedAt:            time.Now(),
	}
	if existing != nil {
		stats.Id = existing.Id
		stats.NumberOfSuccessfulDeliveries = existing.NumberOfSuccessfulDeliveries
		stats.NumberOfUnsuccessfulDeliveries = existing.NumberOfUnsuccessfulDeliveries
		stats.CreatedAt = existing.CreatedAt
	}

	return uow.FleetStatisticsRepository().Upsert(ctx, stats)
}
