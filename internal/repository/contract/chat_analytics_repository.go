package contract

import (
	"context"

	"drone-response-be/internal/entity"
	"drone-response-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatAnalyticsRepository interface {
	Create(ctx context.Context, analytics *entity.ChatAnalytics) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatAnalytics, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatAnalytics, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SetSatisfactionScore issues a single atomic UPDATE so concurrent
	// feedback submissions cannot interleave a read-modify-write.
	SetSatisfactionScore(ctx context.Context, id uuid.UUID, score int) error
}
