package ui

import tea "github.com/charmbracelet/bubbletea"

type keyAction int

const (
	keyNone keyAction = iota
	keyQuit
	keyUp
	keyDown
	keyLeft
	keyRight
	keyEnter
	keyEsc
	keyTab
	keyHelp
	keyPause
	keyIntervalUp
	keyIntervalDown
	keyViewFocus
	keyViewConfig
	keyViewDrift
	keyToggleCamera
	keyCapture
	keySnapshot
	keySelectStar
	keyResetRun
	keyRefreshConfig
)

func matchKey(msg tea.KeyMsg) keyAction {
	switch msg.String() {
	case "q", "ctrl+c":
		return keyQuit
	case "up", "k":
		return keyUp
	case "down", "j":
		return keyDown
	case "left", "h":
		return keyLeft
	case "right", "l":
		return keyRight
	case "enter":
		return keyEnter
	case "esc":
		return keyEsc
	case "tab":
		return keyTab
	case "?":
		return keyHelp
	case "p":
		return keyPause
	case "+", "=":
		return keyIntervalUp
	case "-", "_":
		return keyIntervalDown
	case "1":
		return keyViewFocus
	case "2":
		return keyViewConfig
	case "3":
		return keyViewDrift
	case "c":
		return keyToggleCamera
	case "x":
		return keyCapture
	case "s":
		return keySnapshot
	case "t":
		return keySelectStar
	case "R":
		return keyResetRun
	case "r":
		return keyRefreshConfig
	}
	return keyNone
}
