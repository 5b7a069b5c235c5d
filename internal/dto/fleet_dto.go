package dto

import "time"

type FleetStatusResponse struct {
	Total         int64            `json:"total"`
	ByStatus      map[string]int64 `json:"by_status"`
	ByUrgency     map[string]int64 `json:"by_urgency"`
	CriticalCount int64            `json:"critical_count"`
}

type MonthlyStatisticsView struct {
	Month                          string  `json:"month"`
	NumberOfActiveDrones           int     `json:"number_of_active_drones"`
	NumberOfSuccessfulDeliveries   int     `json:"number_of_successful_deliveries"`
	NumberOfUnsuccessfulDeliveries int     `json:"number_of_unsuccessful_deliveries"`
	AverageResponseTime            float64 `json:"average_response_time"`
}

type FleetStatisticsResponse struct {
	Months []*MonthlyStatisticsView `json:"months"`
}

type FleetStatsRecomputeEvent struct {
	Month      string    `json:"month"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}
