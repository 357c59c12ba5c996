package ui

import (
	"fmt"
	"strings"

	"github.com/starwell/focustop/internal/chart"
	"github.com/starwell/focustop/internal/model"
)

// renderHeader draws the two status lines above the content area:
// camera/backend state, then the focus statistics for the current run.
func renderHeader(snap model.Snapshot, series *chart.Series, width int, paused bool) string {
	var parts []string

	parts = append(parts, styleTitle.Render(" focustop "))

	switch {
	case snap.Err != "":
		parts = append(parts, styleBad.Render("OFFLINE"))
	case snap.Running:
		parts = append(parts, styleGood.Render("RUNNING"))
	default:
		parts = append(parts, styleWarn.Render("STOPPED"))
	}

	if snap.Tracking {
		parts = append(parts,
			styleHeaderLabel.Render("star ")+
				styleHeaderValue.Render(fmt.Sprintf("(%d,%d)", snap.Star.X, snap.Star.Y)))
	} else {
		parts = append(parts, styleHeaderLabel.Render("no star selected"))
	}

	if snap.FrameWidth > 0 {
		parts = append(parts,
			styleHeaderLabel.Render("frame ")+
				styleHeaderValue.Render(fmt.Sprintf("%dx%d", snap.FrameWidth, snap.FrameHeight)))
	}

	if paused {
		parts = append(parts, stylePaused.Render("PAUSED"))
	}

	line1 := strings.Join(parts, "  ")

	var stats []string
	if snap.Tracking {
		stats = append(stats,
			styleHeaderLabel.Render("fwhm ")+
				styleHeaderValue.Render(fmt.Sprintf("%.2f", snap.Smoothed)))
	}
	if v, ok := series.Best(); ok {
		stats = append(stats,
			styleHeaderLabel.Render("best ")+styleGood.Render(fmt.Sprintf("%.2f", v)))
	}
	if v, ok := series.Worst(); ok {
		stats = append(stats,
			styleHeaderLabel.Render("worst ")+styleBad.Render(fmt.Sprintf("%.2f", v)))
	}
	if v, ok := series.Mean(); ok {
		stats = append(stats,
			styleHeaderLabel.Render("mean ")+styleHeaderValue.Render(fmt.Sprintf("%.2f", v)))
	}
	if v, ok := series.Std(); ok {
		stats = append(stats,
			styleHeaderLabel.Render("σ ")+styleHeaderValue.Render(fmt.Sprintf("%.2f", v)))
	}
	stats = append(stats,
		styleHeaderLabel.Render("n ")+styleHeaderValue.Render(fmt.Sprintf("%d", series.Len())))

	line2 := " " + strings.Join(stats, "  ")

	return line1 + "\n" + line2
}
