package ui

import "strings"

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

const sparklineWidth = 16

// renderSparkline draws recent values as block runes, oldest first.
// Values are normalized against their own min/max; a flat run renders
// at the lowest block.
func renderSparkline(values []float64, width int) string {
	if width <= 0 {
		width = sparklineWidth
	}
	if len(values) == 0 {
		return strings.Repeat("·", width)
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	var b strings.Builder
	for i := 0; i < width-len(values); i++ {
		b.WriteString("·")
	}
	valRange := max - min
	for _, v := range values {
		idx := 0
		if valRange > 0 {
			idx = int((v - min) / valRange * float64(len(sparkBlocks)-1))
		}
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkBlocks) {
			idx = len(sparkBlocks) - 1
		}
		b.WriteRune(sparkBlocks[idx])
	}
	return b.String()
}
