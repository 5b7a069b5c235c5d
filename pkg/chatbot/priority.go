package chatbot

import "strings"

var (
	emergencyKeywords    = []string{"emergency", "critical", "urgent", "help", "sos", "disaster"}
	highPriorityKeywords = []string{"battery", "crash", "lost", "malfunction", "error"}
	mediumKeywords       = []string{"status", "location", "eta", "delivery"}
)

// ScorePriority rates a message 1-5. The three keyword tiers are
// non-exclusive and can only raise the score via a running maximum;
// the emergency tier short-circuits once found. The score is advisory
// (notification urgency) and is not consulted by response generation.
func ScorePriority(message string) int {
	priority := 1
	lower := strings.ToLower(message)

	for _, keyword := range emergencyKeywords {
		if strings.Contains(lower, keyword) {
			priority = 5
			break
		}
	}
	if priority == 5 {
		return priority
	}

	for _, keyword := range highPriorityKeywords {
		if strings.Contains(lower, keyword) {
			priority = max(priority, 4)
		}
	}

	for _, keyword := range mediumKeywords {
		if strings.Contains(lower, keyword) {
			priority = max(priority, 3)
		}
	}

	return priority
}
