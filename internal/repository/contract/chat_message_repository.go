package contract

import (
	"context"

	"drone-response-be/internal/entity"
	"drone-response-be/internal/repository/specification"
)

// ChatMessageRepository is append-only: messages are never mutated or
// deleted once written.
type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type QuickActionRepository interface {
	Create(ctx context.Context, action *entity.QuickAction) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QuickAction, error)
}
