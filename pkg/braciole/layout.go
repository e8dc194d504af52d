package braciole

import (
	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/veandco/go-sdl2/sdl"
)

const largeTextScale = constants.LargeTextScale

// Layout geometry at scale 1.0. Scaled dimensions are derived per build.
const (
	indicatorGapBase int32 = 6 // Gap after the selection indicator, pre-scale
	standardIconGap  int32 = 4 // Gap between icon and title in Standard
	fullRowWidth     int32 = 250
)

var (
	fullRowPadding  = internal.SymmetricPadding(8, 16)
	standardPadding = internal.UniformPadding(8)
)

// ItemLayout is the visual structure of one menu item for a single render
// pass. Slots that the variant omits are nil.
type ItemLayout struct {
	Variant   SizeClass
	Bounds    sdl.Rect
	Style     ResolvedStyle
	Icon      *IconSlot
	Title     *TitleSlot
	Indicator *IndicatorSlot
	Semantics Semantics
}

// IconSlot positions the item's icon content.
type IconSlot struct {
	Content IconContent
	Rect    sdl.Rect
}

// TitleSlot positions the item's label text. Soft wrap is always off:
// overflow past MaxLines is ellipsized, never wrapped further.
type TitleSlot struct {
	Text     string
	Rect     sdl.Rect
	Align    constants.TextAlign
	MaxLines int
}

// BuildItemLayout selects the layout variant for the given size class and
// computes the item's visual structure from the spec and resolved style.
// Compact and Standard require icon content; that contract is asserted in
// dev mode.
func BuildItemLayout(class SizeClass, spec ItemSpec, style ResolvedStyle, group GroupContext) ItemLayout {
	scale := group.textScale()

	layout := ItemLayout{
		Variant: class,
		Style:   style,
		Semantics: Semantics{
			Label:    spec.Title,
			IsButton: true,
			Enabled:  spec.Enabled,
			Selected: spec.Selected,
		},
	}

	switch class {
	case SizeClassCompact:
		buildCompact(&layout, spec, style)
	case SizeClassStandard:
		buildStandard(&layout, spec, style, scale)
	default:
		buildFull(&layout, spec, style, group, scale)
	}

	return layout
}

// buildCompact renders only the icon, centered in a fixed padding box.
// No title is shown.
func buildCompact(layout *ItemLayout, spec ItemSpec, style ResolvedStyle) {
	assertContract(spec.Icon != nil, "compact menu item requires icon content")

	side := constants.DefaultCompactSide
	layout.Bounds = sdl.Rect{W: side, H: side}

	iconSize := style.IconSize
	layout.Icon = &IconSlot{
		Content: spec.Icon,
		Rect: sdl.Rect{
			X: (side - iconSize) / 2,
			Y: (side - iconSize) / 2,
			W: iconSize,
			H: iconSize,
		},
	}
}

// buildStandard renders the icon above a single centered title line.
func buildStandard(layout *ItemLayout, spec ItemSpec, style ResolvedStyle, scale float32) {
	assertContract(spec.Icon != nil, "standard menu item requires icon content")

	width := constants.DefaultStandardWidth
	iconSize := style.IconSize
	lineHeight := scaledLineHeight(style.TextSize, scale)
	height := standardPadding.Vertical() + iconSize + standardIconGap + lineHeight

	layout.Bounds = sdl.Rect{W: width, H: height}
	layout.Icon = &IconSlot{
		Content: spec.Icon,
		Rect: sdl.Rect{
			X: (width - iconSize) / 2,
			Y: standardPadding.Top,
			W: iconSize,
			H: iconSize,
		},
	}
	layout.Title = &TitleSlot{
		Text:     spec.Title,
		Align:    constants.TextAlignCenter,
		MaxLines: 1,
		Rect: sdl.Rect{
			X: 0,
			Y: standardPadding.Top + iconSize + standardIconGap,
			W: width,
			H: lineHeight,
		},
	}
}

// buildFull renders the optional leading selection indicator, the expanding
// start-aligned title, and the trailing icon. Above the large-text threshold
// the trailing icon is dropped and the title gains a line and its width.
func buildFull(layout *ItemLayout, spec ItemSpec, style ResolvedStyle, group GroupContext, scale float32) {
	width := group.Width
	if width <= 0 {
		width = fullRowWidth
	}

	largeText := scale > largeTextScale

	maxLines := 2
	if largeText {
		maxLines = 3
	}

	lineHeight := scaledLineHeight(style.TextSize, scale)
	height := fullRowPadding.Vertical() + lineHeight*int32(maxLines)
	if minHeight := constants.DefaultItemHeight; height < minHeight {
		height = minHeight
	}

	layout.Bounds = sdl.Rect{W: width, H: height}

	x := fullRowPadding.Left

	showIndicator := spec.Selected != nil || group.Selectable
	if showIndicator {
		selected := spec.Selected != nil && *spec.Selected
		indicator := newIndicatorSlot(selected, style, x, (height-style.CheckmarkSize)/2)
		layout.Indicator = indicator
		x += indicator.Rect.W + scaleDim(indicatorGapBase, scale)
	}

	titleEnd := width - fullRowPadding.Right

	// Trailing icon is dropped at large text scale so the title keeps the width.
	if spec.Icon != nil && !largeText {
		iconSize := style.IconSize
		layout.Icon = &IconSlot{
			Content: spec.Icon,
			Rect: sdl.Rect{
				X: width - fullRowPadding.Right - iconSize,
				Y: (height - iconSize) / 2,
				W: iconSize,
				H: iconSize,
			},
		}
		titleEnd = layout.Icon.Rect.X - scaleDim(indicatorGapBase, scale)
	}

	layout.Title = &TitleSlot{
		Text:     spec.Title,
		Align:    constants.TextAlignLeft,
		MaxLines: maxLines,
		Rect: sdl.Rect{
			X: x,
			Y: (height - lineHeight*int32(maxLines)) / 2,
			W: titleEnd - x,
			H: lineHeight * int32(maxLines),
		},
	}
}

func scaledLineHeight(textSize int32, scale float32) int32 {
	return int32(float32(textSize)*scale*1.3 + 0.5)
}

func scaleDim(dim int32, scale float32) int32 {
	return int32(float32(dim)*scale + 0.5)
}

// assertContract reports a programming-contract violation. Violations panic
// in dev mode and are logged otherwise.
func assertContract(cond bool, msg string) {
	if cond {
		return
	}
	if constants.IsDevMode() {
		panic("braciole: contract violation: " + msg)
	}
	internal.GetInternalLogger().Error("Contract violation", "detail", msg)
}
