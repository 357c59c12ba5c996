package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// starOverlay collects frame coordinates for star selection. The web
// frontend lets the user click the video; in the terminal they type the
// position shown by their capture preview instead.
type starOverlay struct {
	active     bool
	inputX     textinput.Model
	inputY     textinput.Model
	focusY     bool
	frameW     int
	frameH     int
	result     string
	showResult bool
	resultErr  bool
}

func newStarOverlay() starOverlay {
	x := textinput.New()
	x.Prompt = "x: "
	x.CharLimit = 5
	x.Width = 7

	y := textinput.New()
	y.Prompt = "y: "
	y.CharLimit = 5
	y.Width = 7

	return starOverlay{inputX: x, inputY: y}
}

func (o *starOverlay) open(frameW, frameH int) {
	o.active = true
	o.frameW = frameW
	o.frameH = frameH
	o.result = ""
	o.showResult = false
	o.focusY = false
	o.inputX.SetValue("")
	o.inputY.SetValue("")
	o.inputX.Focus()
	o.inputY.Blur()
}

func (o *starOverlay) close() {
	o.active = false
	o.showResult = false
	o.inputX.Blur()
	o.inputY.Blur()
}

func (o *starOverlay) toggleFocus() {
	o.focusY = !o.focusY
	if o.focusY {
		o.inputX.Blur()
		o.inputY.Focus()
	} else {
		o.inputY.Blur()
		o.inputX.Focus()
	}
}

// coords parses and bounds-checks the entered position.
func (o *starOverlay) coords() (x, y int, err error) {
	x, err = strconv.Atoi(strings.TrimSpace(o.inputX.Value()))
	if err != nil {
		return 0, 0, fmt.Errorf("x must be a number")
	}
	y, err = strconv.Atoi(strings.TrimSpace(o.inputY.Value()))
	if err != nil {
		return 0, 0, fmt.Errorf("y must be a number")
	}
	if x < 0 || y < 0 {
		return 0, 0, fmt.Errorf("coordinates must be positive")
	}
	if o.frameW > 0 && (x >= o.frameW || y >= o.frameH) {
		return 0, 0, fmt.Errorf("outside frame %dx%d", o.frameW, o.frameH)
	}
	return x, y, nil
}

func (o *starOverlay) setResult(msg string, isErr bool) {
	o.result = msg
	o.resultErr = isErr
	o.showResult = true
}

func (o *starOverlay) render(width, height int) string {
	if o.showResult {
		style := styleResultOK
		if o.resultErr {
			style = styleResultErr
		}
		content := style.Render(o.result) + "\n\n" +
			styleDetailLabel.Render("Press any key to close")
		box := styleOverlayBorder.Render(content)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
	}

	title := styleOverlayTitle.Render("Select star")
	frame := ""
	if o.frameW > 0 {
		frame = styleDetailLabel.Render(fmt.Sprintf("frame is %dx%d", o.frameW, o.frameH))
	}

	inputs := o.inputX.View() + "   " + o.inputY.View()
	hint := styleDetailLabel.Render("tab switch  enter select  esc cancel")

	content := title + "\n\n" + inputs + "\n" + frame + "\n\n" + hint
	box := styleOverlayBorder.Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
