package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchAction(t *testing.T) {
	tests := []struct {
		actionType string
		wantAction string
		wantTarget string
	}{
		{"track_drone", "navigate", "/tracking"},
		{"view_reports", "navigate", "/reports"},
		{"fleet_status", "navigate", "/fleet"},
		{"inventory_check", "navigate", "/inventory"},
		{"create_order", "modal", "create_order"},
	}

	for _, tt := range tests {
		t.Run(tt.actionType, func(t *testing.T) {
			res := DispatchAction(tt.actionType)
			assert.Equal(t, tt.wantAction, res.Action)
			assert.Equal(t, tt.wantTarget, res.Target)
			assert.NotEmpty(t, res.Message)
		})
	}
}

func TestDispatchActionWeatherModal(t *testing.T) {
	res := DispatchAction("check_weather")

	assert.Equal(t, "modal", res.Action)
	assert.Equal(t, "22°C", res.Data["temperature"])
	assert.Equal(t, "8 mph NE", res.Data["wind"])
	assert.Equal(t, "10 miles", res.Data["visibility"])
	assert.Equal(t, "Clear", res.Data["conditions"])
}

func TestDispatchActionEmergencyAlert(t *testing.T) {
	res := DispatchAction("emergency_alert")

	assert.Equal(t, "alert", res.Action)
	assert.Equal(t, "high", res.Priority)
}

func TestDispatchActionUnknownType(t *testing.T) {
	res := DispatchAction("make_coffee")

	assert.Equal(t, "Processing your request...", res.Message)
	assert.Equal(t, "none", res.Action)
	assert.Empty(t, res.Target)
}
