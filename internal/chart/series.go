package chart

import "math"

// Series holds the ordered FWHM measurement history for one focus run.
// Insertion order is time order. The data source replaces the contents
// wholesale on each poll cycle; individual samples are never mutated.
// Not safe for concurrent use; the host serializes replace and render.
type Series struct {
	samples []float64
}

// Replace discards the previous contents and stores a copy of samples
// verbatim: no merging, no deduplication, no capping.
func (s *Series) Replace(samples []float64) {
	s.samples = append(s.samples[:0], samples...)
}

// Clear empties the series. Invoked when a new target star is selected
// or the measurement is reset.
func (s *Series) Clear() {
	s.samples = s.samples[:0]
}

// Samples returns the contents oldest-first. The slice is owned by the
// series; callers must not hold it across a Replace or Clear.
func (s *Series) Samples() []float64 {
	return s.samples
}

// Len returns the number of samples.
func (s *Series) Len() int {
	return len(s.samples)
}

// Current returns the most recent measurement.
func (s *Series) Current() (float64, bool) {
	if len(s.samples) == 0 {
		return 0, false
	}
	return s.samples[len(s.samples)-1], true
}

// Best returns the minimum value seen. Lower FWHM means tighter focus.
func (s *Series) Best() (float64, bool) {
	if len(s.samples) == 0 {
		return 0, false
	}
	best := s.samples[0]
	for _, v := range s.samples[1:] {
		if v < best {
			best = v
		}
	}
	return best, true
}

// Worst returns the maximum value seen.
func (s *Series) Worst() (float64, bool) {
	if len(s.samples) == 0 {
		return 0, false
	}
	worst := s.samples[0]
	for _, v := range s.samples[1:] {
		if v > worst {
			worst = v
		}
	}
	return worst, true
}

// Mean returns the arithmetic mean of the series.
func (s *Series) Mean() (float64, bool) {
	if len(s.samples) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, v := range s.samples {
		sum += v
	}
	return sum / float64(len(s.samples)), true
}

// Std returns the population standard deviation of the series.
func (s *Series) Std() (float64, bool) {
	mean, ok := s.Mean()
	if !ok {
		return 0, false
	}
	sum := 0.0
	for _, v := range s.samples {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(s.samples))), true
}
