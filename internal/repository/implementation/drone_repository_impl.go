package implementation

import (
	"context"
	"errors"

	"drone-response-be/internal/entity"
	"drone-response-be/internal/mapper"
	"drone-response-be/internal/model"
	"drone-response-be/internal/repository/contract"
	"drone-response-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DroneRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DroneMapper
}

func NewDroneRepository(db *gorm.DB) contract.DroneRepository {
	return &DroneRepositoryImpl{
		db:     db,
		mapper: mapper.NewDroneMapper(),
	}
}

func (r *DroneRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DroneRepositoryImpl) Create(ctx context.Context, drone *entity.Drone) error {
	m := r.mapper.ToModel(drone)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*drone = *r.mapper.ToEntity(m)
	return nil
}

func (r *DroneRepositoryImpl) Update(ctx context.Context, drone *entity.Drone) error {
	m := r.mapper.ToModel(drone)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*drone = *r.mapper.ToEntity(m)
	return nil
}

func (r *DroneRepositoryImpl) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.Drone{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

func (r *DroneRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Drone, error) {
	var m model.Drone
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DroneRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Drone, error) {
	var models []*model.Drone
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *DroneRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Drone{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type groupCount struct {
	Key   string
	Count int64
}

func (r *DroneRepositoryImpl) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []groupCount
	err := r.db.WithContext(ctx).
		Model(&model.Drone{}).
		Select("status AS key, COUNT(*) AS count").
		Where("is_deleted = ?", false).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Key] = row.Count
	}
	return result, nil
}

func (r *DroneRepositoryImpl) CountByUrgencyLevel(ctx context.Context) (map[string]int64, error) {
	var rows []groupCount
	err := r.db.WithContext(ctx).
		Model(&model.Drone{}).
		Select("urgency_level AS key, COUNT(*) AS count").
		Where("is_deleted = ?", false).
		Group("urgency_level").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Key] = row.Count
	}
	return result, nil
}

type FleetStatisticsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DroneMapper
}

func NewFleetStatisticsRepository(db *gorm.DB) contract.FleetStatisticsRepository {
	return &FleetStatisticsRepositoryImpl{
		db:     db,
		mapper: mapper.NewDroneMapper(),
	}
}

func (r *FleetStatisticsRepositoryImpl) Upsert(ctx context.Context, stats *entity.FleetStatistics) error {
	m := r.mapper.FleetStatisticsToModel(stats)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"number_of_active_drones",
				"number_of_successful_deliveries",
				"number_of_unsuccessful_deliveries",
				"average_response_time",
				"updated_at",
			}),
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	*stats = *r.mapper.FleetStatisticsToEntity(m)
	return nil
}

func (r *FleetStatisticsRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FleetStatistics, error) {
	var m model.FleetStatistics
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.FleetStatisticsToEntity(&m), nil
}

func (r *FleetStatisticsRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FleetStatistics, error) {
	var models []*model.FleetStatistics
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.FleetStatistics, len(models))
	for i, m := range models {
		entities[i] = r.mapper.FleetStatisticsToEntity(m)
	}
	return entities, nil
}
