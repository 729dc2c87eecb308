// Package layout turns a viewport size into the playable field. It mirrors
// the painted frame: a margin, a thick light bar, and the two dashed lines
// inset from either side.
package layout

import "redlight/internal/sim"

const (
	Margin       = 28.0
	BorderWidth  = 16.0
	StartInset   = 80.0
	FinishInset  = 80.0
	MinDimension = 2 * (Margin + BorderWidth + StartInset)
)

// Field computes the field for a viewport of the given CSS pixel size.
// Viewports too small to hold both lines are grown to the minimum.
func Field(width, height float64) (sim.Field, error) {
	width = max(width, MinDimension+1)
	height = max(height, MinDimension)

	edge := Margin + BorderWidth*0.5
	left, top := edge, edge
	right, bottom := width-edge, height-edge
	return sim.NewField(left, top, right, bottom, left+StartInset, right-FinishInset)
}
