package chart

import (
	"fmt"
	"image/color"
	"math"
)

// Theme holds the colors used by the renderer. The defaults mirror the
// original focus panel: near-black background, dim grid, red trace.
type Theme struct {
	Background  color.RGBA
	Grid        color.RGBA
	Trace       color.RGBA
	Best        color.RGBA
	Worst       color.RGBA
	Placeholder color.RGBA
}

// DefaultTheme returns the standard dark panel palette.
func DefaultTheme() Theme {
	return Theme{
		Background:  color.RGBA{R: 20, G: 20, B: 20, A: 255},
		Grid:        color.RGBA{R: 100, G: 100, B: 100, A: 255},
		Trace:       color.RGBA{R: 235, G: 77, B: 61, A: 255},
		Best:        color.RGBA{R: 80, G: 200, B: 120, A: 255},
		Worst:       color.RGBA{R: 230, G: 230, B: 230, A: 255},
		Placeholder: color.RGBA{R: 140, G: 140, B: 140, A: 255},
	}
}

const (
	// traceMargin keeps extreme points clear of the top and bottom
	// borders.
	traceMargin = 10
	labelInset  = 4
	// noDataText is drawn centered when the series is too short to
	// connect any two points. This is a normal state, not an error.
	noDataText = "no data"
)

// Renderer draws a normalized line plot of a sample series onto a
// Surface. It holds no state between calls: rendering the same series
// onto a surface of the same dimensions twice produces identical
// output.
//
// Inputs are assumed well formed: the host filters non-finite samples
// and guarantees a positive-area surface.
type Renderer struct {
	Theme Theme

	// ShowCurrent adds a "Current: x.xx" label for the newest sample
	// under the Worst label.
	ShowCurrent bool
}

// NewRenderer returns a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// Render fills the surface and draws the series as a polyline with
// best/worst annotations. With fewer than two samples only a centered
// placeholder is drawn.
func (r *Renderer) Render(samples []float64, s Surface) {
	w, h := s.Size()
	s.Fill(r.Theme.Background)

	if len(samples) < 2 {
		s.Text(w/2, h/2, AnchorCenter, noDataText, r.Theme.Placeholder)
		return
	}

	min, max := bounds(samples)
	rng := max - min
	padding := rng * 0.1
	denom := rng + 2*padding
	if denom <= 0 {
		// Flat series: every sample equal. Substitute a small nonzero
		// denominator so normalization stays finite.
		denom = 1e-6
	}

	for i := 1; i <= 4; i++ {
		gy := h * i / 5
		s.Line(0, gy, w, gy, r.Theme.Grid)
	}

	n := len(samples)
	span := float64(h - 2*traceMargin)
	prevX, prevY := 0, 0
	for i, v := range samples {
		x := int(math.Round(float64(i) / float64(n-1) * float64(w)))
		normalized := (v - min + padding) / denom
		y := int(math.Round(float64(h) - normalized*span - traceMargin))
		if i > 0 {
			s.Line(prevX, prevY, x, y, r.Theme.Trace)
		}
		prevX, prevY = x, y
	}

	s.Text(labelInset, h-labelInset, AnchorBottomLeft,
		fmt.Sprintf("Best: %.2f", min), r.Theme.Best)
	s.Text(w-labelInset, labelInset, AnchorTopRight,
		fmt.Sprintf("Worst: %.2f", max), r.Theme.Worst)
	if r.ShowCurrent {
		s.Text(w-labelInset, labelInset+14, AnchorTopRight,
			fmt.Sprintf("Current: %.2f", samples[n-1]), r.Theme.Trace)
	}
}

func bounds(samples []float64) (min, max float64) {
	min, max = samples[0], samples[0]
	for _, v := range samples[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
