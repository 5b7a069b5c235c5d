package constant

const (
	DroneStatusActive      = "Active"
	DroneStatusMaintenance = "In Maintenance"
	DroneStatusInactive    = "Inactive"
)

const (
	UrgencyLow      = "Low"
	UrgencyMedium   = "Medium"
	UrgencyHigh     = "High"
	UrgencyCritical = "Critical"
)
