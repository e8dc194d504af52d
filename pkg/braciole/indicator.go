package braciole

import (
	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// IndicatorSlot is the selection affordance of a Full-variant item. Its rect
// is always CheckmarkSize square, selected or not, so toggling selection
// never shifts sibling content. The glyph is only drawn when Selected.
type IndicatorSlot struct {
	Selected bool
	Glyph    string
	Weight   constants.FontWeight
	Size     int32
	Rect     sdl.Rect
}

func newIndicatorSlot(selected bool, style ResolvedStyle, x, y int32) *IndicatorSlot {
	return &IndicatorSlot{
		Selected: selected,
		Glyph:    style.CheckmarkGlyph,
		Weight:   style.CheckmarkWeight,
		Size:     style.CheckmarkSize,
		Rect: sdl.Rect{
			X: x,
			Y: y,
			W: style.CheckmarkSize,
			H: style.CheckmarkSize,
		},
	}
}
