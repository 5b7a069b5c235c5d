package dto

import "time"

type DashboardResponse struct {
	Fleet       *FleetStatusResponse   `json:"fleet"`
	Chat        *DashboardChatStats    `json:"chat"`
	GeneratedAt time.Time              `json:"generated_at"`
	Cached      bool                   `json:"cached"`
}

type DashboardChatStats struct {
	ActiveSessions int64            `json:"active_sessions"`
	TotalMessages  int64            `json:"total_messages"`
	IntentCounts   map[string]int64 `json:"intent_counts"`
}
