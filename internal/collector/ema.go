package collector

// EMA implements Exponential Moving Average smoothing. Seeing noise in
// individual FWHM measurements is normal; the smoothed value is what
// the header displays as "current".
type EMA struct {
	alpha  float64
	value  float64
	primed bool
}

// NewEMA creates a new EMA with the given smoothing factor (0 < alpha <= 1).
// Higher alpha = more responsive, lower alpha = smoother.
func NewEMA(alpha float64) *EMA {
	return &EMA{alpha: alpha}
}

// Update feeds a new sample and returns the smoothed value.
func (e *EMA) Update(sample float64) float64 {
	if !e.primed {
		e.value = sample
		e.primed = true
	} else {
		e.value = e.alpha*sample + (1-e.alpha)*e.value
	}
	return e.value
}

// Reset discards the smoothing state. Called when a new star is
// selected so stale focus values don't bleed into the new run.
func (e *EMA) Reset() {
	e.value = 0
	e.primed = false
}
