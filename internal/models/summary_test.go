package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryMessage(t *testing.T) {
	tests := []struct {
		name     string
		summary  Summary
		expected string
	}{
		{
			name: "swimming",
			summary: Summary{
				TrainingType: "Swimming",
				Duration:     1,
				Distance:     0.9936,
				Speed:        1,
				Calories:     336,
			},
			expected: "Training type: Swimming; Duration: 1.000 h; Distance: 0.994 km; " +
				"Mean speed: 1.000 km/h; Calories spent: 336.000.",
		},
		{
			name: "rounds to three decimals",
			summary: Summary{
				TrainingType: "Running",
				Duration:     1.5,
				Distance:     9.75,
				Speed:        6.5,
				Calories:     699.12345,
			},
			expected: "Training type: Running; Duration: 1.500 h; Distance: 9.750 km; " +
				"Mean speed: 6.500 km/h; Calories spent: 699.123.",
		},
		{
			name: "degenerate duration",
			summary: Summary{
				TrainingType: "Running",
				Distance:     0.468,
				Speed:        math.Inf(1),
				Calories:     math.NaN(),
			},
			expected: "Training type: Running; Duration: 0.000 h; Distance: 0.468 km; " +
				"Mean speed: +Inf km/h; Calories spent: NaN.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.summary.Message())
		})
	}
}

func TestSummaryMessageIsStable(t *testing.T) {
	s := Summary{TrainingType: "SportsWalking", Duration: 1, Distance: 5.85, Speed: 5.85, Calories: 157.5}
	assert.Equal(t, s.Message(), s.Message())
}
