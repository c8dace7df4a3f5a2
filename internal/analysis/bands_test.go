package analysis

import "testing"

func TestThresholdBands(t *testing.T) {
	tests := []struct {
		name      string
		values    []float64
		threshold float64
		want      []IndexBand
	}{
		{
			name:      "reference sequence",
			values:    []float64{0.1, 0.2, 0.6, 0.3, 0.8, 0.2},
			threshold: 0.5,
			want:      []IndexBand{{1, 3}, {3, 5}},
		},
		{
			name:      "no breaches",
			values:    []float64{0.1, 0.5, 0.3},
			threshold: 0.5,
			want:      nil,
		},
		{
			name:      "breach at first sample clamps left",
			values:    []float64{0.9, 0.1},
			threshold: 0.5,
			want:      []IndexBand{{0, 1}},
		},
		{
			name:      "breach at last sample clamps right",
			values:    []float64{0.1, 0.9},
			threshold: 0.5,
			want:      []IndexBand{{0, 1}},
		},
		{
			name:      "single breaching sample",
			values:    []float64{0.9},
			threshold: 0.5,
			want:      []IndexBand{{0, 0}},
		},
		{
			name:      "empty",
			values:    nil,
			threshold: 0.5,
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ThresholdBands(tt.values, tt.threshold)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d bands %v, want %d bands %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("band %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
