package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Title     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// ChatMessage is immutable after creation.
type ChatMessage struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	MessageType   string
	Content       string
	Metadata      map[string]interface{}
	CreatedAt     time.Time
}

type QuickAction struct {
	Id            uuid.UUID
	ChatMessageId uuid.UUID
	ActionType    string
	Label         string
	Icon          string
	Data          map[string]interface{}
	CreatedAt     time.Time
}

type ChatAnalytics struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	QueryType         string
	ResponseTime      float64
	SatisfactionScore *int
	CreatedAt         time.Time
}
