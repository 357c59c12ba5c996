package chart

import (
	"bytes"
	"image/color"
	"math"
	"testing"
)

// recordSurface captures draw calls so tests can assert on the exact
// primitives a render produced.
type recordSurface struct {
	w, h  int
	fills []color.RGBA
	lines []recordedLine
	texts []recordedText
}

type recordedLine struct {
	x0, y0, x1, y1 int
	c              color.RGBA
}

type recordedText struct {
	x, y   int
	anchor Anchor
	s      string
	c      color.RGBA
}

func newRecordSurface(w, h int) *recordSurface {
	return &recordSurface{w: w, h: h}
}

func (r *recordSurface) Size() (int, int)    { return r.w, r.h }
func (r *recordSurface) Fill(c color.RGBA)   { r.fills = append(r.fills, c) }
func (r *recordSurface) Line(x0, y0, x1, y1 int, c color.RGBA) {
	r.lines = append(r.lines, recordedLine{x0, y0, x1, y1, c})
}
func (r *recordSurface) Text(x, y int, anchor Anchor, s string, c color.RGBA) {
	r.texts = append(r.texts, recordedText{x, y, anchor, s, c})
}

func (r *recordSurface) traceLines() []recordedLine {
	theme := DefaultTheme()
	var out []recordedLine
	for _, l := range r.lines {
		if l.c == theme.Trace {
			out = append(out, l)
		}
	}
	return out
}

func TestRenderPlaceholder(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
	}{
		{name: "empty", samples: nil},
		{name: "single", samples: []float64{4.2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRecordSurface(300, 200)
			NewRenderer().Render(tt.samples, s)

			if len(s.fills) != 1 {
				t.Errorf("fills = %d, want 1", len(s.fills))
			}
			if len(s.lines) != 0 {
				t.Errorf("lines = %d, want 0 (placeholder path)", len(s.lines))
			}
			if len(s.texts) != 1 {
				t.Fatalf("texts = %d, want 1", len(s.texts))
			}
			txt := s.texts[0]
			if txt.s != "no data" {
				t.Errorf("placeholder text = %q, want %q", txt.s, "no data")
			}
			if txt.anchor != AnchorCenter || txt.x != 150 || txt.y != 100 {
				t.Errorf("placeholder at (%d,%d) anchor %v, want centered (150,100)", txt.x, txt.y, txt.anchor)
			}
		})
	}
}

func TestRenderSegmentCount(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
	}{
		{name: "two", samples: []float64{1, 2}},
		{name: "three", samples: []float64{3, 1, 2}},
		{name: "many", samples: []float64{5, 4.5, 4.1, 3.8, 3.9, 3.7, 3.6, 4.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRecordSurface(300, 200)
			NewRenderer().Render(tt.samples, s)

			trace := s.traceLines()
			if len(trace) != len(tt.samples)-1 {
				t.Errorf("trace segments = %d, want %d", len(trace), len(tt.samples)-1)
			}
			// Segments connect in index order: each starts where the
			// previous one ended.
			for i := 1; i < len(trace); i++ {
				if trace[i].x0 != trace[i-1].x1 || trace[i].y0 != trace[i-1].y1 {
					t.Errorf("segment %d starts at (%d,%d), previous ends at (%d,%d)",
						i, trace[i].x0, trace[i].y0, trace[i-1].x1, trace[i-1].y1)
				}
			}
		})
	}
}

func TestRenderGridlines(t *testing.T) {
	s := newRecordSurface(300, 200)
	NewRenderer().Render([]float64{1, 2}, s)

	theme := DefaultTheme()
	var grid []recordedLine
	for _, l := range s.lines {
		if l.c == theme.Grid {
			grid = append(grid, l)
		}
	}
	if len(grid) != 4 {
		t.Fatalf("gridlines = %d, want 4", len(grid))
	}
	wantY := []int{40, 80, 120, 160}
	for i, l := range grid {
		if l.y0 != wantY[i] || l.y1 != wantY[i] {
			t.Errorf("gridline %d at y=%d..%d, want %d", i, l.y0, l.y1, wantY[i])
		}
		if l.x0 != 0 || l.x1 != 300 {
			t.Errorf("gridline %d spans x=%d..%d, want 0..300", i, l.x0, l.x1)
		}
	}
}

func TestRenderFlatSeries(t *testing.T) {
	s := newRecordSurface(300, 200)
	NewRenderer().Render([]float64{5.0, 5.0, 5.0}, s)

	trace := s.traceLines()
	if len(trace) != 2 {
		t.Fatalf("trace segments = %d, want 2", len(trace))
	}
	// padding and range are both zero; the epsilon guard keeps the
	// normalization finite and every point lands on the bottom margin.
	wantY := 200 - traceMargin
	for i, l := range trace {
		for _, y := range []int{l.y0, l.y1} {
			if y != wantY {
				t.Errorf("segment %d y=%d, want %d", i, y, wantY)
			}
		}
	}
}

func TestRenderLabels(t *testing.T) {
	s := newRecordSurface(300, 200)
	NewRenderer().Render([]float64{3.0, 1.0, 2.0}, s)

	var best, worst *recordedText
	for i := range s.texts {
		switch s.texts[i].anchor {
		case AnchorBottomLeft:
			best = &s.texts[i]
		case AnchorTopRight:
			worst = &s.texts[i]
		}
	}
	if best == nil || worst == nil {
		t.Fatalf("labels missing: best=%v worst=%v", best, worst)
	}
	if best.s != "Best: 1.00" {
		t.Errorf("best label = %q, want %q", best.s, "Best: 1.00")
	}
	if worst.s != "Worst: 3.00" {
		t.Errorf("worst label = %q, want %q", worst.s, "Worst: 3.00")
	}
}

func TestRenderCurrentLabel(t *testing.T) {
	s := newRecordSurface(300, 200)
	r := NewRenderer()
	r.ShowCurrent = true
	r.Render([]float64{3.0, 1.0, 2.5}, s)

	found := false
	for _, txt := range s.texts {
		if txt.s == "Current: 2.50" {
			found = true
		}
	}
	if !found {
		t.Errorf("current label not drawn, texts: %+v", s.texts)
	}
}

func TestRenderEndpointX(t *testing.T) {
	s := newRecordSurface(300, 200)
	NewRenderer().Render([]float64{1.0, 2.0}, s)

	trace := s.traceLines()
	if len(trace) != 1 {
		t.Fatalf("trace segments = %d, want 1", len(trace))
	}
	if trace[0].x0 != 0 {
		t.Errorf("first point x = %d, want 0", trace[0].x0)
	}
	if trace[0].x1 != 300 {
		t.Errorf("last point x = %d, want 300", trace[0].x1)
	}
}

func TestRenderVerticalMargins(t *testing.T) {
	// Extremes must never be drawn flush against the border: the
	// minimum sample sits below height-10, the maximum above 10.
	s := newRecordSurface(300, 200)
	NewRenderer().Render([]float64{1.0, 9.0}, s)

	trace := s.traceLines()
	if len(trace) != 1 {
		t.Fatalf("trace segments = %d, want 1", len(trace))
	}
	for _, y := range []int{trace[0].y0, trace[0].y1} {
		if y < traceMargin || y > 200-traceMargin {
			t.Errorf("point y=%d outside margins [%d,%d]", y, traceMargin, 200-traceMargin)
		}
	}
	// With 10% padding the minimum does not touch the margin exactly,
	// but it must stay in the lower half and the maximum in the upper.
	if trace[0].y0 <= trace[0].y1 {
		t.Errorf("min sample y=%d not below max sample y=%d", trace[0].y0, trace[0].y1)
	}
}

func TestRenderIdempotent(t *testing.T) {
	render := func() []byte {
		s := NewImageSurface(160, 90)
		NewRenderer().Render([]float64{3.2, 2.8, 2.9, 2.5, 2.7}, s)
		pix := make([]byte, len(s.Image().Pix))
		copy(pix, s.Image().Pix)
		return pix
	}

	first := render()
	second := render()
	if !bytes.Equal(first, second) {
		t.Error("two renders of identical input differ")
	}

	// Rendering twice into the same surface must also be a no-op for
	// the final pixels: step 1 clears any prior content.
	s := NewImageSurface(160, 90)
	r := NewRenderer()
	r.Render([]float64{3.2, 2.8, 2.9, 2.5, 2.7}, s)
	r.Render([]float64{3.2, 2.8, 2.9, 2.5, 2.7}, s)
	if !bytes.Equal(first, s.Image().Pix) {
		t.Error("double render into one surface differs from single render")
	}
}

func TestRenderRescalesToSurface(t *testing.T) {
	samples := []float64{4.0, 3.0, 3.5, 2.5}

	big := newRecordSurface(300, 200)
	small := newRecordSurface(150, 100)
	r := NewRenderer()
	r.Render(samples, big)
	r.Render(samples, small)

	bigTrace := big.traceLines()
	smallTrace := small.traceLines()
	if len(bigTrace) != len(smallTrace) {
		t.Fatalf("segment counts differ: %d vs %d", len(bigTrace), len(smallTrace))
	}
	if smallTrace[len(smallTrace)-1].x1 != 150 {
		t.Errorf("last x on small surface = %d, want 150", smallTrace[len(smallTrace)-1].x1)
	}
	if bigTrace[len(bigTrace)-1].x1 != 300 {
		t.Errorf("last x on big surface = %d, want 300", bigTrace[len(bigTrace)-1].x1)
	}
}

func TestRenderNoNonFiniteCoordinates(t *testing.T) {
	// Defense check on the normalization itself: feed series that make
	// the padded range tiny and confirm finite math throughout.
	tests := [][]float64{
		{5, 5, 5},
		{0, 0},
		{1e-12, 1e-12, 1e-12},
		{2.5, 2.5 + 1e-13},
	}
	for _, samples := range tests {
		min, max := bounds(samples)
		rng := max - min
		padding := rng * 0.1
		denom := rng + 2*padding
		if denom <= 0 {
			denom = 1e-6
		}
		for _, v := range samples {
			normalized := (v - min + padding) / denom
			if math.IsNaN(normalized) || math.IsInf(normalized, 0) {
				t.Errorf("samples %v: normalized(%v) not finite", samples, v)
			}
		}
	}
}
