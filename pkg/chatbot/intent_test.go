package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    IntentTag
	}{
		{
			name:    "drone status by keyword",
			message: "Where is drone D-42 right now?",
			want:    IntentDroneStatus,
		},
		{
			name:    "delivery management",
			message: "Can we reschedule the package for camp B2?",
			want:    IntentDeliveryManagement,
		},
		{
			name:    "inventory",
			message: "supplies are running out, check stock",
			want:    IntentInventory,
		},
		{
			name:    "fleet coordination",
			message: "assign the nearest unit to sector 4",
			want:    IntentFleetCoordination,
		},
		{
			name:    "disaster priority",
			message: "which zones are most critical today",
			want:    IntentDisasterPriority,
		},
		{
			name:    "analytics",
			message: "show me the performance data for last week",
			want:    IntentAnalytics,
		},
		{
			name:    "weather",
			message: "any rain in the forecast?",
			want:    IntentWeather,
		},
		{
			name:    "communication",
			message: "send a notification to the field team",
			want:    IntentCommunication,
		},
		{
			name:    "no keyword falls back to general",
			message: "hello there",
			want:    IntentGeneral,
		},
		{
			name:    "case insensitive",
			message: "DRONE CHECK PLEASE",
			want:    IntentDroneStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.message))
		})
	}
}

// Classification is first-declared-intent-wins: a message matching
// several intent vocabularies resolves to the earliest declared one.
func TestClassifyDeclarationOrderWins(t *testing.T) {
	// "drone" (drone_status) and "delivery" (delivery_management)
	assert.Equal(t, IntentDroneStatus, Classify("is the drone delivery on time?"))

	// "eta" (delivery_management) and "weather" (weather)
	assert.Equal(t, IntentDeliveryManagement, Classify("what's the eta given the weather?"))

	// "priority" (disaster_priority) and "report" (analytics)
	assert.Equal(t, IntentDisasterPriority, Classify("priority report please"))
}
