package unitofwork

import (
	"context"
	"fmt"

	"drone-response-be/internal/repository/contract"
	"drone-response-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatSessionRepository() contract.ChatSessionRepository {
	return implementation.NewChatSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatMessageRepository() contract.ChatMessageRepository {
	return implementation.NewChatMessageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) QuickActionRepository() contract.QuickActionRepository {
	return implementation.NewQuickActionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatAnalyticsRepository() contract.ChatAnalyticsRepository {
	return implementation.NewChatAnalyticsRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DroneRepository() contract.DroneRepository {
	return implementation.NewDroneRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FleetStatisticsRepository() contract.FleetStatisticsRepository {
	return implementation.NewFleetStatisticsRepository(u.getDB())
}
