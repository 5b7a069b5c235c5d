package unitofwork

import (
	"context"

	"drone-response-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	QuickActionRepository() contract.QuickActionRepository
	ChatAnalyticsRepository() contract.ChatAnalyticsRepository
	DroneRepository() contract.DroneRepository
	FleetStatisticsRepository() contract.FleetStatisticsRepository
}
