package chart

import "image/color"

// Anchor selects which corner (or center) of a text label is pinned to
// the coordinate passed to Text.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
	AnchorCenter
)

// Surface is a fixed-size 2D pixel target. The renderer borrows a
// surface for the duration of one Render call; it never resizes,
// retains, or owns it. Both dimensions must be positive; that is the
// host's precondition to enforce.
type Surface interface {
	// Size reports the drawable area in pixels.
	Size() (w, h int)

	// Fill paints the entire surface with a single color.
	Fill(c color.RGBA)

	// Line draws a straight segment between two points. Coordinates
	// outside the surface are clipped, not rejected.
	Line(x0, y0, x1, y1 int, c color.RGBA)

	// Text places a label at a fixed screen position.
	Text(x, y int, anchor Anchor, s string, c color.RGBA)
}
