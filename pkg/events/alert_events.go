package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeEmergencyAlert      = "EMERGENCY_ALERT"
	TypeHighPriorityMessage = "HIGH_PRIORITY_MESSAGE"
)

// EmergencyAlertEvent is raised when a user triggers the emergency_alert
// quick action.
type EmergencyAlertEvent struct {
	UserId     uuid.UUID
	SessionId  *uuid.UUID
	ActionData map[string]interface{}
	OccurredAt time.Time
}

func (e EmergencyAlertEvent) EventType() string {
	return TypeEmergencyAlert
}

func (e EmergencyAlertEvent) Payload() map[string]interface{} {
	payload := map[string]interface{}{
		"user_id":     e.UserId.String(),
		"action_data": e.ActionData,
		"occurred_at": e.OccurredAt.Format(time.RFC3339),
	}
	if e.SessionId != nil {
		payload["session_id"] = e.SessionId.String()
	}
	return payload
}

func (e EmergencyAlertEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// HighPriorityMessageEvent is raised when an inbound chat message scores
// priority 4 or above.
type HighPriorityMessageEvent struct {
	UserId     uuid.UUID
	SessionId  uuid.UUID
	Priority   int
	Excerpt    string
	OccurredAt time.Time
}

func (e HighPriorityMessageEvent) EventType() string {
	return TypeHighPriorityMessage
}

func (e HighPriorityMessageEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"user_id":     e.UserId.String(),
		"session_id":  e.SessionId.String(),
		"priority":    e.Priority,
		"excerpt":     e.Excerpt,
		"occurred_at": e.OccurredAt.Format(time.RFC3339),
	}
}

func (e HighPriorityMessageEvent) Timestamp() time.Time {
	return e.OccurredAt
}
