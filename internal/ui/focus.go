package ui

import (
	"github.com/starwell/focustop/internal/chart"
)

// focusView renders the FWHM trend chart. The renderer draws into a
// braille dot surface sized to the content area, so the plot rescales
// with the terminal.
type focusView struct {
	renderer *chart.Renderer
}

func newFocusView() focusView {
	r := chart.NewRenderer()
	r.ShowCurrent = true
	return focusView{renderer: r}
}

func (v focusView) render(series *chart.Series, width, height int) string {
	if width < 8 || height < 3 {
		return stylePlaceholder.Render("terminal too small")
	}

	surface := newDotSurface(width, height)
	v.renderer.Render(series.Samples(), surface)
	return surface.View()
}
