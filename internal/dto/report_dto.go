package dto

type ReportOverviewResponse struct {
	TotalDrones      int64            `json:"total_drones"`
	ActiveDrones     int64            `json:"active_drones"`
	InMaintenance    int64            `json:"in_maintenance"`
	InactiveDrones   int64            `json:"inactive_drones"`
	ActiveRatio      float64          `json:"active_ratio"`
	RecentDrones     int64            `json:"recent_drones"`
	UrgencyBreakdown map[string]int64 `json:"urgency_breakdown"`
	TotalSessions    int64            `json:"total_sessions"`
	TotalMessages    int64            `json:"total_messages"`
}
