package chatbot

import "strings"

// IntentTag is the coarse category of a user request.
type IntentTag string

const (
	IntentDroneStatus        IntentTag = "drone_status"
	IntentDeliveryManagement IntentTag = "delivery_management"
	IntentInventory          IntentTag = "inventory"
	IntentFleetCoordination  IntentTag = "fleet_coordination"
	IntentDisasterPriority   IntentTag = "disaster_priority"
	IntentAnalytics          IntentTag = "analytics"
	IntentWeather            IntentTag = "weather"
	IntentCommunication      IntentTag = "communication"
	IntentGeneral            IntentTag = "general"
)

type intentPattern struct {
	Tag      IntentTag
	Keywords []string
}

// intentPatterns is an ordered list, not a map: classification is
// first-declared-intent-wins, so the declaration order below must not
// change. A message containing both "drone" and "delivery" classifies
// as drone_status because drone_status is declared first.
var intentPatterns = []intentPattern{
	{IntentDroneStatus, []string{"drone", "status", "where", "location", "track"}},
	{IntentDeliveryManagement, []string{"delivery", "order", "package", "eta", "reschedule"}},
	{IntentInventory, []string{"inventory", "stock", "supplies", "low stock", "supplier"}},
	{IntentFleetCoordination, []string{"fleet", "assign", "nearest", "reroute", "coordinate"}},
	{IntentDisasterPriority, []string{"priority", "critical", "emergency", "urgent", "disaster"}},
	{IntentAnalytics, []string{"report", "analytics", "stats", "performance", "data"}},
	{IntentWeather, []string{"weather", "conditions", "forecast", "wind", "rain"}},
	{IntentCommunication, []string{"alert", "notification", "message", "contact", "support"}},
}

// Classify maps a message to an intent by plain substring matching.
// No tokenization, no stemming, no fuzzy matching.
func Classify(message string) IntentTag {
	lower := strings.ToLower(message)

	for _, pattern := range intentPatterns {
		for _, keyword := range pattern.Keywords {
			if strings.Contains(lower, keyword) {
				return pattern.Tag
			}
		}
	}

	return IntentGeneral
}
