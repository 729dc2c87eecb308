package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidField is returned when a field rectangle or its lines are out of order.
var ErrInvalidField = errors.New("invalid field")

// Field is the playable rectangle plus the start and finish lines.
type Field struct {
	Left, Top, Right, Bottom float64
	Width, Height            float64
	StartX, FinishX          float64
}

// NewField validates the boundaries and derives Width and Height.
func NewField(left, top, right, bottom, startX, finishX float64) (Field, error) {
	if !(left < startX && startX < finishX && finishX < right) {
		return Field{}, fmt.Errorf("lines %.1f/%.1f outside %.1f..%.1f: %w", startX, finishX, left, right, ErrInvalidField)
	}
	if top >= bottom {
		return Field{}, fmt.Errorf("top %.1f not above bottom %.1f: %w", top, bottom, ErrInvalidField)
	}
	return Field{
		Left:    left,
		Top:     top,
		Right:   right,
		Bottom:  bottom,
		Width:   right - left,
		Height:  bottom - top,
		StartX:  startX,
		FinishX: finishX,
	}, nil
}

// Clamp keeps a circle of radius r inside the field.
func (f Field) Clamp(p Vec, r float64) Vec {
	p.X = max(f.Left+r, min(f.Right-r, p.X))
	p.Y = max(f.Top+r, min(f.Bottom-r, p.Y))
	return p
}
