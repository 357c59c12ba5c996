package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorBg        = lipgloss.Color("#141414")
	colorFg        = lipgloss.Color("#e6e6e6")
	colorFgDim     = lipgloss.Color("#8c8c8c")
	colorRed       = lipgloss.Color("#eb4d3d")
	colorGreen     = lipgloss.Color("#50c878")
	colorYellow    = lipgloss.Color("#e5c07b")
	colorCyan      = lipgloss.Color("#56b6c2")
	colorSelection = lipgloss.Color("#3a3f4b")
)

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorCyan).
			Bold(true)

	styleHeaderLabel = lipgloss.NewStyle().
				Foreground(colorFgDim)

	styleHeaderValue = lipgloss.NewStyle().
				Foreground(colorFg).
				Bold(true)

	styleGood = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	styleWarn = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)

	styleBad = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	styleFooter = lipgloss.NewStyle().
			Foreground(colorFgDim)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorCyan).
			Bold(true)

	stylePaused = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true).
			Blink(true)

	styleStatusLine = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleDetailLabel = lipgloss.NewStyle().
				Foreground(colorFgDim)

	stylePlaceholder = lipgloss.NewStyle().
				Foreground(colorFgDim).
				Italic(true)

	styleSelectedRow = lipgloss.NewStyle().
				Background(colorSelection).
				Foreground(colorFg).
				Bold(true)

	styleOverlayBorder = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorCyan).
				Background(colorBg).
				Padding(1, 2)

	styleOverlayTitle = lipgloss.NewStyle().
				Foreground(colorCyan).
				Bold(true)

	styleResultOK = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	styleResultErr = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)
)
