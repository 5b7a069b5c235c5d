package chatbot

import "sort"

// ResponseMetrics summarizes a set of response latencies in seconds.
type ResponseMetrics struct {
	Avg    float64 `json:"avg"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

func CalculateResponseMetrics(responseTimes []float64) ResponseMetrics {
	if len(responseTimes) == 0 {
		return ResponseMetrics{}
	}

	sorted := make([]float64, len(responseTimes))
	copy(sorted, responseTimes)
	sort.Float64s(sorted)

	n := len(sorted)
	var sum float64
	for _, t := range sorted {
		sum += t
	}

	var median float64
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return ResponseMetrics{
		Avg:    sum / float64(n),
		Min:    sorted[0],
		Max:    sorted[n-1],
		Median: median,
	}
}
