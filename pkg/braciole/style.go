package braciole

import (
	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// ItemStyle is a complete set of visual attributes for a menu item. The
// static defaults are an ItemStyle; the ambient theme and per-item overrides
// are partial layers merged on top of it.
type ItemStyle struct {
	TextColor         sdl.Color
	HoveredTextColor  sdl.Color
	DisabledTextColor sdl.Color
	DestructiveColor  sdl.Color
	IconColor         sdl.Color
	HoverColor        sdl.Color // Row background tint while hovered
	PressedColor      sdl.Color // Row background tint while pressed
	TextSize          int32
	IconSize          int32
	CheckmarkGlyph    string
	CheckmarkWeight   constants.FontWeight
	CheckmarkSize     int32
}

// ItemStyleOverride is a partial ItemStyle. Nil fields defer to the next
// layer of the cascade.
type ItemStyleOverride struct {
	TextColor         *sdl.Color
	HoveredTextColor  *sdl.Color
	DisabledTextColor *sdl.Color
	DestructiveColor  *sdl.Color
	IconColor         *sdl.Color
	HoverColor        *sdl.Color
	PressedColor      *sdl.Color
	TextSize          *int32
	IconSize          *int32
	CheckmarkGlyph    *string
	CheckmarkWeight   *constants.FontWeight
	CheckmarkSize     *int32
}

func (o *ItemStyleOverride) apply(s *ItemStyle) {
	if o == nil {
		return
	}
	if o.TextColor != nil {
		s.TextColor = *o.TextColor
	}
	if o.HoveredTextColor != nil {
		s.HoveredTextColor = *o.HoveredTextColor
	}
	if o.DisabledTextColor != nil {
		s.DisabledTextColor = *o.DisabledTextColor
	}
	if o.DestructiveColor != nil {
		s.DestructiveColor = *o.DestructiveColor
	}
	if o.IconColor != nil {
		s.IconColor = *o.IconColor
	}
	if o.HoverColor != nil {
		s.HoverColor = *o.HoverColor
	}
	if o.PressedColor != nil {
		s.PressedColor = *o.PressedColor
	}
	if o.TextSize != nil {
		s.TextSize = *o.TextSize
	}
	if o.IconSize != nil {
		s.IconSize = *o.IconSize
	}
	if o.CheckmarkGlyph != nil {
		s.CheckmarkGlyph = *o.CheckmarkGlyph
	}
	if o.CheckmarkWeight != nil {
		s.CheckmarkWeight = *o.CheckmarkWeight
	}
	if o.CheckmarkSize != nil {
		s.CheckmarkSize = *o.CheckmarkSize
	}
}

// ResolvedStyle is the immutable result of the style cascade for one item,
// built once per render pass. Interaction state picks between the base and
// hovered variants at draw time.
type ResolvedStyle struct {
	TextColor        sdl.Color
	HoveredTextColor sdl.Color
	IconColor        sdl.Color
	HoverColor       sdl.Color
	PressedColor     sdl.Color
	TextSize         int32
	IconSize         int32
	CheckmarkGlyph   string
	CheckmarkWeight  constants.FontWeight
	CheckmarkSize    int32
}

// DefaultItemStyle returns the static bottom layer of the style cascade.
func DefaultItemStyle() ItemStyle {
	return ItemStyle{
		TextColor:         sdl.Color{R: 255, G: 255, B: 255, A: 255},
		HoveredTextColor:  sdl.Color{R: 255, G: 255, B: 255, A: 255},
		DisabledTextColor: sdl.Color{R: 255, G: 255, B: 255, A: 96},
		DestructiveColor:  sdl.Color{R: 255, G: 69, B: 58, A: 255},
		IconColor:         sdl.Color{R: 255, G: 255, B: 255, A: 255},
		HoverColor:        sdl.Color{R: 255, G: 255, B: 255, A: 24},
		PressedColor:      sdl.Color{R: 255, G: 255, B: 255, A: 48},
		TextSize:          17,
		IconSize:          20,
		CheckmarkGlyph:    constants.Check,
		CheckmarkWeight:   constants.FontWeightSemiBold,
		CheckmarkSize:     16,
	}
}

// AmbientItemStyle maps the active theme into the middle layer of the
// cascade. Only fields the theme actually specifies are set; zero-value
// theme colors are left to the defaults.
func AmbientItemStyle() *ItemStyleOverride {
	theme := internal.GetTheme()
	ambient := &ItemStyleOverride{}

	setIfThemed := func(dst **sdl.Color, c sdl.Color) {
		if (c != sdl.Color{}) {
			color := c
			*dst = &color
		}
	}

	setIfThemed(&ambient.TextColor, theme.TextColor)
	setIfThemed(&ambient.HoveredTextColor, theme.HoveredTextColor)
	setIfThemed(&ambient.DisabledTextColor, theme.DisabledTextColor)
	setIfThemed(&ambient.DestructiveColor, theme.DestructiveColor)
	setIfThemed(&ambient.IconColor, theme.TextColor)
	setIfThemed(&ambient.HoverColor, theme.HoverColor)
	setIfThemed(&ambient.PressedColor, theme.PressedColor)

	return ambient
}

// ResolveItemStyle merges the three cascade layers field by field (override
// wins over ambient, ambient over defaults), then applies the enabled and
// destructive rules. Resolution is total: no field can end up unset.
//
// A destructive item takes the cascade's destructive color for both text and
// icon; an IconColor override is only honored for non-destructive items.
// A disabled item takes the style source's disabled color for text and icon.
func ResolveItemStyle(override, ambient *ItemStyleOverride, defaults ItemStyle, enabled, destructive bool) ResolvedStyle {
	merged := defaults
	ambient.apply(&merged)
	override.apply(&merged)

	textColor := merged.TextColor
	iconColor := merged.IconColor
	hoveredTextColor := merged.HoveredTextColor

	if destructive {
		textColor = merged.DestructiveColor
		iconColor = merged.DestructiveColor
		hoveredTextColor = merged.DestructiveColor
	}

	if !enabled {
		textColor = merged.DisabledTextColor
		iconColor = merged.DisabledTextColor
		hoveredTextColor = merged.DisabledTextColor
	}

	return ResolvedStyle{
		TextColor:        textColor,
		HoveredTextColor: hoveredTextColor,
		IconColor:        iconColor,
		HoverColor:       merged.HoverColor,
		PressedColor:     merged.PressedColor,
		TextSize:         merged.TextSize,
		IconSize:         merged.IconSize,
		CheckmarkGlyph:   merged.CheckmarkGlyph,
		CheckmarkWeight:  merged.CheckmarkWeight,
		CheckmarkSize:    merged.CheckmarkSize,
	}
}
