package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"drone-response-be/internal/constant"
	"drone-response-be/internal/dto"
	"drone-response-be/internal/repository/specification"
	"drone-response-be/internal/repository/unitofwork"
)

type IReportService interface {
	Overview(ctx context.Context) (*dto.ReportOverviewResponse, error)
	ExportDronesCSV(ctx context.Context) ([]byte, error)
}

type reportService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewReportService(uowFactory unitofwork.RepositoryFactory) IReportService {
	return &reportService{uowFactory: uowFactory}
}

func (s *reportService) Overview(ctx context.Context) (*dto.ReportOverviewResponse, error) {
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

	totalSessions, err := uow.ChatSessionRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	totalMessages, err := uow.ChatMessageRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := uow.DroneRepository().Count(ctx,
		specification.NotDeleted{},
		specification.CreatedAtOrAfter{At: time.Now().AddDate(0, 0, -7)},
	)
	if err != nil {
		return nil, err
	}

	var activeRatio float64
	if total > 0 {
		activeRatio = float64(byStatus[constant.DroneStatusActive]) / float64(total)
	}

	return &dto.ReportOverviewResponse{
		TotalDrones:      total,
		ActiveDrones:     byStatus[constant.DroneStatusActive],
		InMaintenance:    byStatus[constant.DroneStatusMaintenance],
		InactiveDrones:   byStatus[constant.DroneStatusInactive],
		ActiveRatio:      activeRatio,
		RecentDrones:     recent,
		UrgencyBreakdown: byUrgency,
		TotalSessions:    totalSessions,
		TotalMessages:    totalMessages,
	}, nil
}

func (s *reportService) ExportDronesCSV(ctx context.Context) ([]byte, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	drones, err := uow.DroneRepository().FindAll(ctx,
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"id", "status", "urgency_level", "latitude", "longitude", "assigned_pilot_id", "created_at"}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	for _, drone := range drones {
		pilot := ""
		if drone.AssignedPilotId != nil {
			pilot = drone.AssignedPilotId.String()
		}
		row := []string{
			drone.Id.String(),
			drone.Status,
			drone.UrgencyLevel,
			strconv.FormatFloat(drone.LocationLatitude, 'f', -1, 64),
			strconv.FormatFloat(drone.LocationLongitude, 'f', -1, 64),
			pilot,
			drone.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
