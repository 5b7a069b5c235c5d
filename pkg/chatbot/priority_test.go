package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorePriority(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    int
	}{
		{
			name:    "emergency keyword short-circuits to 5",
			message: "EMERGENCY at camp B2",
			want:    5,
		},
		{
			name:    "sos scores 5",
			message: "sos we need help now",
			want:    5,
		},
		{
			name:    "hardware fault scores 4",
			message: "the battery is draining fast",
			want:    4,
		},
		{
			name:    "malfunction scores 4",
			message: "sensor malfunction on unit 7",
			want:    4,
		},
		{
			name:    "status query scores 3",
			message: "what's the delivery eta",
			want:    3,
		},
		{
			name:    "plain chatter floors at 1",
			message: "thanks, that was useful",
			want:    1,
		},
		{
			name:    "mixed tiers resolve to the highest",
			message: "URGENT: drone lost in zone A7, battery critical",
			want:    5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScorePriority(tt.message))
		})
	}
}
