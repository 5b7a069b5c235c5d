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
)

type ChatAnalyticsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatAnalyticsRepository(db *gorm.DB) contract.ChatAnalyticsRepository {
	return &ChatAnalyticsRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatAnalyticsRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatAnalyticsRepositoryImpl) Create(ctx context.Context, analytics *entity.ChatAnalytics) error {
	m := r.mapper.ChatAnalyticsToModel(analytics)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*analytics = *r.mapper.ChatAnalyticsToEntity(m)
	return nil
}

func (r *ChatAnalyticsRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatAnalytics, error) {
	var m model.ChatAnalytics
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ChatAnalyticsToEntity(&m), nil
}

func (r *ChatAnalyticsRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatAnalytics, error) {
	var models []*model.ChatAnalytics
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ChatAnalytics, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ChatAnalyticsToEntity(m)
	}
	return entities, nil
}

func (r *ChatAnalyticsRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChatAnalytics{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ChatAnalyticsRepositoryImpl) SetSatisfactionScore(ctx context.Context, id uuid.UUID, score int) error {
	return r.db.WithContext(ctx).
		Model(&model.ChatAnalytics{}).
		Where("id = ?", id).
		Update("satisfaction_score", score).Error
}
