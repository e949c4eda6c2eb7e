package utils

import (
	"math"
	"testing"
)

func TestAdjustDeadlift(t *testing.T) {
	tests := []struct {
		name      string
		base      float64
		predicted float64
		want      float64
	}{
		{name: "prediction above base is kept", base: 180, predicted: 190, want: 190},
		{name: "prediction equal to base is kept", base: 180, predicted: 180, want: 180},
		{name: "prediction below base is scaled", base: 200, predicted: 150, want: 168},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustDeadlift(tt.base, tt.predicted)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AdjustDeadlift(%v, %v) = %v, want %v", tt.base, tt.predicted, got, tt.want)
			}
		})
	}
}
