package chatbot

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDroneFinder struct {
	drones []DroneStatus
	err    error
	limit  int
}

func (f *stubDroneFinder) FindActiveDrones(ctx context.Context, limit int) ([]DroneStatus, error) {
	f.limit = limit
	return f.drones, f.err
}

func TestGenerateDroneStatusRendersFleet(t *testing.T) {
	id := uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000")
	finder := &stubDroneFinder{drones: []DroneStatus{
		{Id: id, Status: "Active", UrgencyLevel: "Critical", Latitude: -6.2, Longitude: 106.8},
	}}
	g := NewGenerator(finder)

	res, err := g.Generate(context.Background(), IntentDroneStatus, "where are my drones")
	require.NoError(t, err)

	assert.Equal(t, 3, finder.limit)
	assert.Contains(t, res.Content, "Current drone status:")
	assert.Contains(t, res.Content, "a1b2c3d4: Active - Critical priority")
	assert.Contains(t, res.Content, "Location: -6.2, 106.8")
	assert.Equal(t, 1, res.Metadata["drone_count"])

	types := make([]string, 0, len(res.QuickActions))
	for _, qa := range res.QuickActions {
		types = append(types, qa.Type)
	}
	assert.Equal(t, []string{"track_drone", "fleet_status", "emergency_alert"}, types)
}

func TestGenerateDroneStatusEmptyFleet(t *testing.T) {
	g := NewGenerator(&stubDroneFinder{})

	res, err := g.Generate(context.Background(), IntentDroneStatus, "drone status")
	require.NoError(t, err)

	assert.Contains(t, res.Content, "No active drones found")
	require.Len(t, res.QuickActions, 2)
	assert.Equal(t, "Add Drone", res.QuickActions[0].Label)
	assert.Equal(t, "View Fleet", res.QuickActions[1].Label)
}

func TestGenerateDroneStatusFinderError(t *testing.T) {
	g := NewGenerator(&stubDroneFinder{err: errors.New("db down")})

	_, err := g.Generate(context.Background(), IntentDroneStatus, "drone status")
	assert.Error(t, err)
}

func TestGenerateCannedIntents(t *testing.T) {
	g := NewGenerator(&stubDroneFinder{})

	tests := []struct {
		intent      IntentTag
		contentPart string
		actionCount int
	}{
		{IntentDeliveryManagement, "manage deliveries and orders", 3},
		{IntentInventory, "LOW STOCK ALERT", 3},
		{IntentFleetCoordination, "Fleet Coordination", 3},
		{IntentDisasterPriority, "Disaster Zone Priority System Active", 3},
		{IntentAnalytics, "Analytics Summary", 3},
		{IntentWeather, "Flight conditions: OPTIMAL", 3},
		{IntentCommunication, "Communication Center", 3},
		{IntentGeneral, "drone disaster management", 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.intent), func(t *testing.T) {
			res, err := g.Generate(context.Background(), tt.intent, "anything")
			require.NoError(t, err)
			assert.Contains(t, res.Content, tt.contentPart)
			assert.Len(t, res.QuickActions, tt.actionCount)
		})
	}
}

func TestGenerateUnknownIntentFallsBackToGeneral(t *testing.T) {
	g := NewGenerator(&stubDroneFinder{})

	res, err := g.Generate(context.Background(), IntentTag("nonsense"), "hi")
	require.NoError(t, err)
	assert.Contains(t, res.Content, "drone disaster management")
}
