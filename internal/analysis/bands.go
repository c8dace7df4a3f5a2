package analysis

// IndexBand is an inclusive index range to highlight on a time series.
type IndexBand struct {
	Start int
	End   int
}

// ThresholdBands returns one band per sample strictly exceeding threshold,
// spanning one sample before and after the breach, clamped to the sequence
// bounds. Bands from adjacent breaches may overlap; they are emitted in
// breach order and never merged.
func ThresholdBands(values []float64, threshold float64) []IndexBand {
	var bands []IndexBand
	for i, v := range values {
		if v <= threshold {
			continue
		}
		band := IndexBand{Start: i - 1, End: i + 1}
		if band.Start < 0 {
			band.Start = 0
		}
		if band.End > len(values)-1 {
			band.End = len(values) - 1
		}
		bands = append(bands, band)
	}
	return bands
}
