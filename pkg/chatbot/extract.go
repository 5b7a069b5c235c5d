package chatbot

import "regexp"

// Entities holds the structured tokens pulled out of a free-text message.
// All matches are kept, duplicates included, in order of appearance.
type Entities struct {
	DroneIds      []string
	Locations     []string
	UrgencyLevels []string
	Numbers       []string
}

var (
	dronePattern    = regexp.MustCompile(`(?i)\b(?:drone)[-_]?([A-Z0-9]+)\b`)
	urgencyPattern  = regexp.MustCompile(`(?i)\b(critical|high|medium|low|urgent|emergency)\b`)
	numberPattern   = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)
	locationPattern = regexp.MustCompile(`(?i)\b(?:zone|area|sector|region|camp|station)\s+([A-Z0-9]+)\b`)
)

// ExtractEntities runs four independent regex passes over the raw text.
// It is a side channel for priority scoring and never blocks response
// generation.
func ExtractEntities(message string) Entities {
	return Entities{
		DroneIds:      captures(dronePattern, message),
		Locations:     captures(locationPattern, message),
		UrgencyLevels: captures(urgencyPattern, message),
		Numbers:       numberPattern.FindAllString(message, -1),
	}
}

func captures(re *regexp.Regexp, message string) []string {
	matches := re.FindAllStringSubmatch(message, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}
