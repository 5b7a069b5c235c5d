package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateResponseMetrics(t *testing.T) {
	metrics := CalculateResponseMetrics([]float64{0.5, 0.1, 0.3})

	assert.InDelta(t, 0.3, metrics.Avg, 1e-9)
	assert.Equal(t, 0.1, metrics.Min)
	assert.Equal(t, 0.5, metrics.Max)
	assert.Equal(t, 0.3, metrics.Median)
}

func TestCalculateResponseMetricsEvenCount(t *testing.T) {
	metrics := CalculateResponseMetrics([]float64{0.4, 0.2, 0.8, 0.6})

	assert.InDelta(t, 0.5, metrics.Avg, 1e-9)
	assert.InDelta(t, 0.5, metrics.Median, 1e-9)
}

func TestCalculateResponseMetricsEmpty(t *testing.T) {
	assert.Equal(t, ResponseMetrics{}, CalculateResponseMetrics(nil))
}

func TestCalculateResponseMetricsDoesNotMutateInput(t *testing.T) {
	input := []float64{0.9, 0.1}
	CalculateResponseMetrics(input)

	assert.Equal(t, []float64{0.9, 0.1}, input)
}
