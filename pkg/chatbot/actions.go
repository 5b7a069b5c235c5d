package chatbot

// ActionResponse is the fixed response shape for a dispatched quick
// action: a navigation target, a modal payload, or an alert signal.
type ActionResponse struct {
	Message  string                 `json:"message"`
	Action   string                 `json:"action"`
	Target   string                 `json:"target,omitempty"`
	Data     map[string]interface{} `json:"data,omitempty"`
	Priority string                 `json:"priority,omitempty"`
}

var actionResponses = map[string]ActionResponse{
	"track_drone": {
		Message: "Opening live drone tracking interface...",
		Action:  "navigate",
		Target:  "/tracking",
	},
	"view_reports": {
		Message: "Loading analytics dashboard...",
		Action:  "navigate",
		Target:  "/reports",
	},
	"check_weather": {
		Message: "Fetching latest weather data...",
		Action:  "modal",
		Data: map[string]interface{}{
			"temperature": "22°C",
			"wind":        "8 mph NE",
			"visibility":  "10 miles",
			"conditions":  "Clear",
		},
	},
	"fleet_status": {
		Message: "Displaying fleet status overview...",
		Action:  "navigate",
		Target:  "/fleet",
	},
	"create_order": {
		Message: "Opening order creation form...",
		Action:  "modal",
		Target:  "create_order",
	},
	"inventory_check": {
		Message: "Loading inventory management system...",
		Action:  "navigate",
		Target:  "/inventory",
	},
	"emergency_alert": {
		Message:  "Activating emergency protocols...",
		Action:   "alert",
		Priority: "high",
	},
}

// DispatchAction looks up the canned response for an action type.
// Unknown action types fall back to a generic acknowledgement rather
// than failing.
func DispatchAction(actionType string) ActionResponse {
	if response, ok := actionResponses[actionType]; ok {
		return response
	}
	return ActionResponse{
		Message: "Processing your request...",
		Action:  "none",
	}
}
