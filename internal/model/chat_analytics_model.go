package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatAnalytics struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            uuid.UUID `gorm:"type:uuid;not null;index"`
	QueryType         string    `gorm:"type:varchar(100);not null"`
	ResponseTime      float64   `gorm:"not null"` // seconds
	SatisfactionScore *int      // 1-5, set later by feedback
	CreatedAt         time.Time `gorm:"autoCreateTime;index"`
}

func (ChatAnalytics) TableName() string {
	return "chat_analytics"
}
