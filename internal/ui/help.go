package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpEntry struct {
	key  string
	desc string
}

var helpEntries = []helpEntry{
	{"1/2/3", "focus / settings / drift view"},
	{"c", "start or stop the camera stream"},
	{"t", "select tracking star"},
	{"x", "capture a still"},
	{"s", "save chart snapshot (PNG)"},
	{"R", "reset measurement run"},
	{"r", "reload camera settings"},
	{"p", "pause display updates"},
	{"+/-", "poll faster / slower"},
	{"j/k", "move selection"},
	{"h/l", "cycle setting choice"},
	{"enter", "apply setting"},
	{"?", "toggle this help"},
	{"q", "quit"},
}

func renderHelp(width, height int) string {
	var lines []string
	lines = append(lines, styleOverlayTitle.Render("Keys"), "")
	for _, e := range helpEntries {
		lines = append(lines,
			styleFooterKey.Render(padRight(e.key, 7))+styleFooter.Render(e.desc))
	}

	box := styleOverlayBorder.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-len(s))
}
