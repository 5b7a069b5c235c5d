package constant

const (
	ChatMessageTypeUser   = "user"
	ChatMessageTypeBot    = "bot"
	ChatMessageTypeSystem = "system"
)

const (
	QuickActionTrackDrone     = "track_drone"
	QuickActionViewReports    = "view_reports"
	QuickActionCheckWeather   = "check_weather"
	QuickActionFleetStatus    = "fleet_status"
	QuickActionCreateOrder    = "create_order"
	QuickActionInventoryCheck = "inventory_check"
	QuickActionEmergencyAlert = "emergency_alert"
)

const DefaultSessionTitle = "New Chat"
