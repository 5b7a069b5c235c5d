package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QuickAction struct {
	Id            uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatMessageId uuid.UUID         `gorm:"type:uuid;not null;index"`
	ActionType    string            `gorm:"type:varchar(20);not null"`
	Label         string            `gorm:"type:varchar(100);not null"`
	Icon          string            `gorm:"type:varchar(50);not null;default:'help'"`
	Data          datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt     time.Time         `gorm:"autoCreateTime"`
}

func (QuickAction) TableName() string {
	return "quick_actions"
}
