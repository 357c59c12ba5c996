package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/starwell/focustop/internal/chart"
)

const (
	dotsPerCellX = 2
	dotsPerCellY = 4
	brailleBase  = 0x2800
)

// brailleBit maps a dot position inside a cell (x 0..1, y 0..3) to its
// bit in the braille pattern block.
var brailleBit = [dotsPerCellY][dotsPerCellX]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// dotSurface adapts a braille dot grid to the chart.Surface contract so
// the trend renderer draws directly into terminal cells. One cell holds
// 2x4 dots; labels land on the cell grid and take precedence over dots.
type dotSurface struct {
	cols, rows int

	dots      []uint8      // braille pattern bits per cell
	dotColor  []color.RGBA // foreground of the last dot drawn per cell
	textRunes []rune       // 0 = no label rune in this cell
	textColor []color.RGBA

	bg color.RGBA
}

func newDotSurface(cols, rows int) *dotSurface {
	n := cols * rows
	return &dotSurface{
		cols:      cols,
		rows:      rows,
		dots:      make([]uint8, n),
		dotColor:  make([]color.RGBA, n),
		textRunes: make([]rune, n),
		textColor: make([]color.RGBA, n),
	}
}

// Size reports the drawable area in dots; the renderer works in dots,
// not cells.
func (d *dotSurface) Size() (int, int) {
	return d.cols * dotsPerCellX, d.rows * dotsPerCellY
}

func (d *dotSurface) Fill(c color.RGBA) {
	d.bg = c
	for i := range d.dots {
		d.dots[i] = 0
		d.textRunes[i] = 0
	}
}

func (d *dotSurface) Line(x0, y0, x1, y1 int, c color.RGBA) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		d.setDot(x, y, c)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func (d *dotSurface) setDot(x, y int, c color.RGBA) {
	w, h := d.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	idx := (y/dotsPerCellY)*d.cols + x/dotsPerCellX
	d.dots[idx] |= brailleBit[y%dotsPerCellY][x%dotsPerCellX]
	d.dotColor[idx] = c
}

// Text places a label on the cell grid. Pixel coordinates are mapped to
// the containing cell; right and center anchors shift the start column
// so the anchored edge lands on that cell.
func (d *dotSurface) Text(x, y int, anchor chart.Anchor, s string, c color.RGBA) {
	runes := []rune(s)
	if len(runes) == 0 {
		return
	}

	col := x / dotsPerCellX
	row := y / dotsPerCellY
	switch anchor {
	case chart.AnchorTopRight, chart.AnchorBottomRight:
		col -= len(runes) - 1
	case chart.AnchorCenter:
		col -= len(runes) / 2
	}
	if row < 0 {
		row = 0
	}
	if row >= d.rows {
		row = d.rows - 1
	}

	for i, r := range runes {
		cc := col + i
		if cc < 0 || cc >= d.cols {
			continue
		}
		idx := row*d.cols + cc
		d.textRunes[idx] = r
		d.textColor[idx] = c
	}
}

// View renders the grid as styled terminal lines.
func (d *dotSurface) View() string {
	base := lipgloss.NewStyle().Background(rgbaToColor(d.bg))
	styles := make(map[color.RGBA]lipgloss.Style)
	styleFor := func(c color.RGBA) lipgloss.Style {
		st, ok := styles[c]
		if !ok {
			st = base.Foreground(rgbaToColor(c))
			styles[c] = st
		}
		return st
	}

	var b strings.Builder
	for row := 0; row < d.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < d.cols; col++ {
			idx := row*d.cols + col
			switch {
			case d.textRunes[idx] != 0:
				b.WriteString(styleFor(d.textColor[idx]).Render(string(d.textRunes[idx])))
			case d.dots[idx] != 0:
				b.WriteString(styleFor(d.dotColor[idx]).Render(string(rune(brailleBase + int(d.dots[idx])))))
			default:
				b.WriteString(base.Render(" "))
			}
		}
	}
	return b.String()
}

func rgbaToColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
