package ui

import (
	"fmt"
	"strings"

	"github.com/starwell/focustop/internal/model"
)

// configView lists the camera settings with their choices. h/l cycles
// the pending choice, enter applies it through the backend.
type configView struct {
	options []model.ConfigOption
	pending map[string]string // setting name -> unapplied choice
	cursor  int
	offset  int
	status  string
}

func newConfigView() configView {
	return configView{pending: make(map[string]string)}
}

func (v *configView) setOptions(options []model.ConfigOption) {
	v.options = options
	if v.cursor >= len(options) {
		v.cursor = 0
		v.offset = 0
	}
	// Applied values may have changed server-side; drop stale pending
	// entries that now match.
	for name, val := range v.pending {
		for _, opt := range options {
			if opt.Name == name && opt.Current == val {
				delete(v.pending, name)
			}
		}
	}
}

func (v *configView) moveUp() {
	if v.cursor > 0 {
		v.cursor--
	}
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
}

func (v *configView) moveDown() {
	if v.cursor < len(v.options)-1 {
		v.cursor++
	}
}

// cycle moves the pending choice of the selected option by delta.
func (v *configView) cycle(delta int) {
	if v.cursor < 0 || v.cursor >= len(v.options) {
		return
	}
	opt := v.options[v.cursor]
	if len(opt.Choices) == 0 {
		return
	}

	idx := 0
	current := v.pendingOrCurrent(opt)
	for i, c := range opt.Choices {
		if c == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(opt.Choices)) % len(opt.Choices)

	choice := opt.Choices[idx]
	if choice == opt.Current {
		delete(v.pending, opt.Name)
	} else {
		v.pending[opt.Name] = choice
	}
}

// selected returns the setting and value to apply, or ok=false when the
// selected option has no pending change.
func (v *configView) selected() (setting, value string, ok bool) {
	if v.cursor < 0 || v.cursor >= len(v.options) {
		return "", "", false
	}
	opt := v.options[v.cursor]
	value, ok = v.pending[opt.Name]
	return opt.Name, value, ok
}

func (v *configView) applied(setting, value string) {
	delete(v.pending, setting)
	for i := range v.options {
		if v.options[i].Name == setting {
			v.options[i].Current = value
		}
	}
}

func (v *configView) pendingOrCurrent(opt model.ConfigOption) string {
	if val, ok := v.pending[opt.Name]; ok {
		return val
	}
	return opt.Current
}

func (v *configView) render(width, height int) string {
	if len(v.options) == 0 {
		return stylePlaceholder.Render("  no camera settings loaded (r to refresh)")
	}

	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	if v.cursor >= v.offset+visible {
		v.offset = v.cursor - visible + 1
	}

	var lines []string
	lines = append(lines, styleTitle.Render(" Camera Settings"))

	end := v.offset + visible
	if end > len(v.options) {
		end = len(v.options)
	}
	for i := v.offset; i < end; i++ {
		opt := v.options[i]
		label := opt.Label
		if label == "" {
			label = opt.Name
		}

		value := v.pendingOrCurrent(opt)
		display := fmt.Sprintf("‹ %s ›", value)
		marker := " "
		if _, dirty := v.pending[opt.Name]; dirty {
			marker = "*"
		}

		row := fmt.Sprintf(" %s %-18s %s", marker, label, display)
		if i == v.cursor {
			lines = append(lines, styleSelectedRow.Render(row))
		} else {
			lines = append(lines, styleHeaderValue.Render(fmt.Sprintf(" %s ", marker))+
				styleHeaderLabel.Render(fmt.Sprintf("%-18s ", label))+
				styleHeaderValue.Render(display))
		}
	}

	if v.status != "" {
		lines = append(lines, styleStatusLine.Render(" "+v.status))
	}

	return strings.Join(lines, "\n")
}
