package telemetry

import (
	"math"
	"testing"
)

func TestComputeHealthStats(t *testing.T) {
	values := []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	hs := ComputeHealthStats(values)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"mean", hs.Mean, 5.5},
		{"std", hs.Std, 3.0277},
		{"p10", hs.P10, 1},
		{"p50", hs.P50, 5},
		{"p90", hs.P90, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 0.001 {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}

	// Input is not reordered
	if values[0] != 10 {
		t.Error("ComputeHealthStats sorted the caller's slice")
	}
}

func TestComputeHealthStatsEdges(t *testing.T) {
	if hs := ComputeHealthStats(nil); hs != (HealthStats{}) {
		t.Errorf("empty input = %+v, want zeros", hs)
	}

	hs := ComputeHealthStats([]float64{42})
	want := HealthStats{Mean: 42, P10: 42, P50: 42, P90: 42}
	if hs != want {
		t.Errorf("single value = %+v, want %+v", hs, want)
	}
}
