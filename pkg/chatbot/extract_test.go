package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEntities(t *testing.T) {
	entities := ExtractEntities("URGENT: drone-A12 lost near zone A7, battery at 15.5 percent")

	assert.Equal(t, []string{"A12"}, entities.DroneIds)
	assert.Equal(t, []string{"A7"}, entities.Locations)
	assert.Equal(t, []string{"URGENT"}, entities.UrgencyLevels)
	assert.Equal(t, []string{"15.5"}, entities.Numbers)
}

func TestExtractEntitiesDroneIdVariants(t *testing.T) {
	tests := []struct {
		message string
		want    []string
	}{
		{"track drone_42 please", []string{"42"}},
		{"drone-X9 and droneB3 are out", []string{"X9", "B3"}},
		{"no identifiers here", []string{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractEntities(tt.message).DroneIds, tt.message)
	}
}

func TestExtractEntitiesLocations(t *testing.T) {
	entities := ExtractEntities("reroute via sector 9 to camp B2 and station D")

	assert.Equal(t, []string{"9", "B2", "D"}, entities.Locations)
}

func TestExtractEntitiesKeepsDuplicates(t *testing.T) {
	entities := ExtractEntities("critical situation, critical supplies depleted")

	assert.Equal(t, []string{"critical", "critical"}, entities.UrgencyLevels)
	assert.Empty(t, entities.Numbers)
}
