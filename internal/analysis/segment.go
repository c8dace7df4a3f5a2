// Package analysis derives the aggregates and intervals the chart
// renderers consume from the raw simulation document.
package analysis

// RegimeInterval is a contiguous run of price samples sharing one regime
// label. Start and End are inclusive sample indices.
type RegimeInterval struct {
	Label string
	Start int
	End   int
}

// SegmentRegimes collapses the per-sample regime labels into the minimal
// ordered set of contiguous intervals. The result partitions [0, len)
// exactly: no gaps, no overlaps, one interval per label change plus one.
// An empty input yields nil.
func SegmentRegimes(labels []string) []RegimeInterval {
	if len(labels) == 0 {
		return nil
	}

	intervals := make([]RegimeInterval, 0, 4)
	start := 0
	for i := 1; i < len(labels); i++ {
		if labels[i] != labels[start] {
			intervals = append(intervals, RegimeInterval{Label: labels[start], Start: start, End: i - 1})
			start = i
		}
	}
	intervals = append(intervals, RegimeInterval{Label: labels[start], Start: start, End: len(labels) - 1})

	return intervals
}
