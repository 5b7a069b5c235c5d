package dto

import (
	"time"

	"drone-response-be/pkg/chatbot"

	"github.com/google/uuid"
)

type ProcessMessageRequest struct {
	Message   string     `json:"message" validate:"required"`
	SessionId *uuid.UUID `json:"session_id"`
}

type QuickActionDTO struct {
	Type  string                 `json:"type"`
	Label string                 `json:"label"`
	Icon  string                 `json:"icon"`
	Data  map[string]interface{} `json:"data,omitempty"`
}

// ProcessMessageResponse is the full response envelope returned to the
// caller after one message has been classified, answered and persisted.
type ProcessMessageResponse struct {
	SessionId    uuid.UUID              `json:"session_id"`
	MessageId    uuid.UUID              `json:"message_id"`
	Content      string                 `json:"content"`
	QuickActions []QuickActionDTO       `json:"quick_actions"`
	Metadata     map[string]interface{} `json:"metadata"`
}

type ChatHistoryMessage struct {
	Id           uuid.UUID              `json:"id"`
	Type         string                 `json:"type"`
	Content      string                 `json:"content"`
	Timestamp    time.Time              `json:"timestamp"`
	Metadata     map[string]interface{} `json:"metadata"`
	QuickActions []QuickActionDTO       `json:"quick_actions,omitempty"`
}

type ChatHistoryResponse struct {
	SessionId uuid.UUID            `json:"session_id"`
	Messages  []ChatHistoryMessage `json:"messages"`
}

type SessionSummary struct {
	Id           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
	MessageCount int64      `json:"message_count"`
}

type QuickActionRequest struct {
	ActionType string                 `json:"action_type" validate:"required"`
	Data       map[string]interface{} `json:"data"`
	SessionId  *uuid.UUID             `json:"session_id"`
}

type FeedbackRequest struct {
	MessageId uuid.UUID `json:"message_id" validate:"required"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Feedback  string    `json:"feedback"`
}

type VoiceToTextResponse struct {
	Text    string `json:"text"`
	Success bool   `json:"success"`
}

type UsageReportResponse struct {
	Period            string                  `json:"period"`
	TotalQueries      int64                   `json:"total_queries"`
	TotalSessions     int64                   `json:"total_sessions"`
	AvgSatisfaction   float64                 `json:"avg_satisfaction"`
	ResponseMetrics   chatbot.ResponseMetrics `json:"response_metrics"`
	MostCommonQueries []string                `json:"most_common_queries"`
}
