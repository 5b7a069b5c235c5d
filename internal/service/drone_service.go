package service

import (
	"context"
	"encoding/json"
	"time"

	"drone-response-be/internal/constant"
	"drone-response-be/internal/dto"
	"drone-response-be/internal/entity"
	"drone-response-be/internal/pkg/logger"
	"drone-response-be/internal/repository/specification"
	"drone-response-be/internal/repository/unitofwork"
	"drone-response-be/pkg/chatbot"

	"github.com/google/uuid"
)

type IDroneService interface {
	Create(ctx context.Context, req *dto.CreateDroneRequest) (*dto.DroneView, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.DroneView, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDroneRequest) (*dto.DroneView, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status, urgency string, limit, offset int) (*dto.ListDronesResponse, error)

	// FindActiveDrones backs the chatbot's drone_status responses.
	FindActiveDrones(ctx context.Context, limit int) ([]chatbot.DroneStatus, error)
}

type droneService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
}

func NewDroneService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IDroneService {
	return &droneService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		log:              log,
	}
}

func (s *droneService) Create(ctx context.Context, req *dto.CreateDroneRequest) (*dto.DroneView, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	status := req.Status
	if status == "" {
		status = constant.DroneStatusActive
	}
	urgency := req.UrgencyLevel
	if urgency == "" {
		urgency = constant.UrgencyLow
	}

	drone := &entity.Drone{
		Id:                uuid.New(),
		LocationLatitude:  req.LocationLatitude,
		LocationLongitude: req.LocationLongitude,
		PackageDetails:    req.PackageDetails,
		UrgencyLevel:      urgency,
		AssignedPilotId:   req.AssignedPilotId,
		AdditionalNote:    req.AdditionalNote,
		Status:            status,
		CreatedAt:         time.Now(),
	}

	if err := uow.DroneRepository().Create(ctx, drone); err != nil {
		return nil, err
	}

	s.publishRecompute(ctx, "drone_created")

	return droneToView(drone), nil
}

func (s *droneService) Show(ctx context.Context, id uuid.UUID) (*dto.DroneView, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	drone, err := uow.DroneRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if drone == nil {
		return nil, nil
	}
	return droneToView(drone), nil
}

func (s *droneService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDroneRequest) (*dto.DroneView, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	drone, err := uow.DroneRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if drone == nil {
		return nil, nil
	}

	if req.LocationLatitude != nil {
		drone.LocationLatitude = *req.LocationLatitude
	}
	if req.LocationLongitude != nil {
		drone.LocationLongitude = *req.LocationLongitude
	}
	if req.PackageDetails != nil {
		drone.PackageDetails = req.PackageDetails
	}
	if req.UrgencyLevel != nil {
		drone.UrgencyLevel = *req.UrgencyLevel
	}
	if req.AssignedPilotId != nil {
		drone.AssignedPilotId = req.AssignedPilotId
	}
	if req.AdditionalNote != nil {
		drone.AdditionalNote = *req.AdditionalNote
	}
	if req.Status != nil {
		drone.Status = *req.Status
	}

	if err := uow.DroneRepository().Update(ctx, drone); err != nil {
		return nil, err
	}

	s.publishRecompute(ctx, "drone_updated")

	return droneToView(drone), nil
}

func (s *droneService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	drone, err := uow.DroneRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.NotDeleted{},
	)
	if err != nil {
		return err
	}
	if drone == nil {
		return nil
	}

	if err := uow.DroneRepository().SoftDelete(ctx, id); err != nil {
		return err
	}

	s.publishRecompute(ctx, "drone_deleted")
	return nil
}

func (s *droneService) List(ctx context.Context, status, urgency string, limit, offset int) (*dto.ListDronesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	filters := []specification.Specification{specification.NotDeleted{}}
	if status != "" {
		filters = append(filters, specification.ByStatus{Status: status})
	}
	if urgency != "" {
		filters = append(filters, specification.ByUrgencyLevel{UrgencyLevel: urgency})
	}

	count, err := uow.DroneRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 50
	}
	listSpecs := append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)

	drones, err := uow.DroneRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	views := make([]*dto.DroneView, 0, len(drones))
	for _, drone := range drones {
		views = append(views, droneToView(drone))
	}

	return &dto.ListDronesResponse{Count: count, Drones: views}, nil
}

func (s *droneService) FindActiveDrones(ctx context.Context, limit int) ([]chatbot.DroneStatus, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	drones, err := uow.DroneRepository().FindAll(ctx,
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: limit},
	)
	if err != nil {
		return nil, err
	}

	statuses := make([]chatbot.DroneStatus, 0, len(drones))
	for _, drone := range drones {
		statuses = append(statuses, chatbot.DroneStatus{
			Id:           drone.Id,
			Status:       drone.Status,
			UrgencyLevel: drone.UrgencyLevel,
			Latitude:     drone.LocationLatitude,
			Longitude:    drone.LocationLongitude,
		})
	}
	return statuses, nil
}

// publishRecompute enqueues a fleet statistics refresh for the current
// month. The consumer does the actual work, so failures here only cost
// freshness, never the request.
func (s *droneService) publishRecompute(ctx context.Context, reason string) {
	if s.publisherService == nil {
		return
	}

	payload, err := json.Marshal(dto.FleetStatsRecomputeEvent{
		Month:      time.Now().UTC().Format("2006-01"),
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return
	}

	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("drone_service", "Failed to publish fleet stats recompute", map[string]interface{}{
			"reason": reason,
			"error":  err.Error(),
		})
	}
}

func droneToView(drone *entity.Drone) *dto.DroneView {
	return &dto.DroneView{
		Id:                drone.Id,
		LocationLatitude:  drone.LocationLatitude,
		LocationLongitude: drone.LocationLongitude,
		PackageDetails:    drone.PackageDetails,
		UrgencyLevel:      drone.UrgencyLevel,
		AssignedPilotId:   drone.AssignedPilotId,
		AdditionalNote:    drone.AdditionalNote,
		Status:            drone.Status,
		CreatedAt:         drone.CreatedAt,
		UpdatedAt:         drone.UpdatedAt,
	}
}
