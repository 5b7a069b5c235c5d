package contract

import (
	"context"

	"drone-response-be/internal/entity"
	"drone-response-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DroneRepository interface {
	Create(ctx context.Context, drone *entity.Drone) error
	Update(ctx context.Context, drone *entity.Drone) error
	// SoftDelete flips is_deleted; drone rows are never removed.
	SoftDelete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Drone, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Drone, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	CountByUrgencyLevel(ctx context.Context) (map[string]int64, error)
}

type FleetStatisticsRepository interface {
	Upsert(ctx context.Context, stats *entity.FleetStatistics) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FleetStatistics, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FleetStatistics, error)
}
