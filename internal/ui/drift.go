package ui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/starwell/focustop/internal/model"
)

// driftView plots the tracked star's displacement from its initial
// position, one line per axis. Useful for judging polar alignment while
// the focus run is idle.
type driftView struct{}

func (v driftView) render(drift []model.DriftPoint, width, height int) string {
	if width < 12 || height < 5 {
		return stylePlaceholder.Render("terminal too small")
	}
	if len(drift) < 2 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			stylePlaceholder.Render("waiting for drift data"))
	}

	minY, maxY := drift[0].DX, drift[0].DX
	for _, p := range drift {
		for _, val := range []float64{p.DX, p.DY} {
			if val < minY {
				minY = val
			}
			if val > maxY {
				maxY = val
			}
		}
	}
	if maxY-minY < 1 {
		// Keep at least one pixel of vertical range so a motionless
		// star still plots as a line.
		maxY = minY + 1
	}

	lc := linechart.New(width, height-2, 0, float64(len(drift)-1), minY, maxY)
	lc.Clear()
	for i := 0; i < len(drift)-1; i++ {
		lc.DrawBrailleLine(
			canvas.Float64Point{X: float64(i), Y: drift[i].DX},
			canvas.Float64Point{X: float64(i + 1), Y: drift[i+1].DX},
		)
		lc.DrawBrailleLine(
			canvas.Float64Point{X: float64(i), Y: drift[i].DY},
			canvas.Float64Point{X: float64(i + 1), Y: drift[i+1].DY},
		)
	}
	lc.DrawXYAxisAndLabel()

	last := drift[len(drift)-1]
	legend := " " +
		styleHeaderLabel.Render("dx ") +
		styleHeaderValue.Render(fmt.Sprintf("%+.1fpx", last.DX)) +
		"  " +
		styleHeaderLabel.Render("dy ") +
		styleHeaderValue.Render(fmt.Sprintf("%+.1fpx", last.DY))

	return strings.Join([]string{
		styleTitle.Render(" Star Drift"),
		lc.View(),
		legend,
	}, "\n")
}
