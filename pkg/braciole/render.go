package braciole

import (
	"fmt"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// IconColorFor selects the icon tint for an interaction state.
func (s ResolvedStyle) IconColorFor(state InteractionState) sdl.Color {
	if state == StateHovered || state == StatePressed {
		return s.HoveredTextColor
	}
	return s.IconColor
}

func drawItem(renderer *sdl.Renderer, layout *ItemLayout, state InteractionState, cache *internal.TextureCache) {
	drawFeedback(renderer, layout, state)

	if layout.Indicator != nil {
		drawIndicator(renderer, layout.Indicator, layout.Style.IconColorFor(state), cache)
	}

	if layout.Title != nil {
		drawTitle(renderer, layout.Title, layout.Style, state, cache)
	}

	if layout.Icon != nil {
		drawIcon(renderer, layout.Icon, layout.Style.IconColorFor(state), cache)
	}
}

func drawFeedback(renderer *sdl.Renderer, layout *ItemLayout, state InteractionState) {
	tint := layout.Style.BackgroundFor(state)
	if tint.A == 0 {
		return
	}

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(tint.R, tint.G, tint.B, tint.A)
	renderer.FillRect(&layout.Bounds)
}

func drawTitle(renderer *sdl.Renderer, title *TitleSlot, style ResolvedStyle, state InteractionState, cache *internal.TextureCache) {
	theme := internal.GetTheme()
	font, err := internal.LoadFont(theme.FontPath, style.TextSize)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to load title font", "path", theme.FontPath, "error", NewInfrastructureError("load_font", err))
		return
	}

	color := style.TextColorFor(state)
	lineHeight := title.Rect.H / int32(title.MaxLines)

	lines := truncateLines(title.Text, font, title.Rect.W, title.MaxLines)
	for i, line := range lines {
		key := titleCacheKey(line, color, title.Rect.W, style.TextSize)
		texture := cache.Get(key)
		if texture == nil {
			texture = renderText(renderer, line, font, color)
			if texture == nil {
				continue
			}
			cache.Set(key, texture)
		}

		_, _, w, h, _ := texture.Query()

		x := title.Rect.X
		switch title.Align {
		case constants.TextAlignCenter:
			x += (title.Rect.W - w) / 2
		case constants.TextAlignRight:
			x += title.Rect.W - w
		}

		y := title.Rect.Y + int32(i)*lineHeight + (lineHeight-h)/2
		renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
	}
}

func drawIcon(renderer *sdl.Renderer, icon *IconSlot, color sdl.Color, cache *internal.TextureCache) {
	switch content := icon.Content.(type) {
	case Glyph:
		drawGlyph(renderer, content.Code, icon.Rect, color, constants.FontWeightRegular, cache)
	case CustomIcon:
		drawCustomIcon(renderer, content, icon.Rect, color, cache)
	}
}

func drawIndicator(renderer *sdl.Renderer, indicator *IndicatorSlot, color sdl.Color, cache *internal.TextureCache) {
	// The rect is reserved either way; only the glyph is conditional.
	if !indicator.Selected {
		return
	}
	drawGlyph(renderer, indicator.Glyph, indicator.Rect, color, indicator.Weight, cache)
}

func drawGlyph(renderer *sdl.Renderer, glyph string, rect sdl.Rect, color sdl.Color, weight constants.FontWeight, cache *internal.TextureCache) {
	theme := internal.GetTheme()
	font, err := internal.LoadFont(theme.IconFontPath, rect.H)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to load icon font", "path", theme.IconFontPath, "error", NewInfrastructureError("load_font", err))
		return
	}

	key := fmt.Sprintf("glyph|%s|%d|%s|%d", glyph, rect.H, colorKey(color), weight)
	texture := cache.Get(key)
	if texture == nil {
		if weight >= constants.FontWeightSemiBold {
			font.SetStyle(ttf.STYLE_BOLD)
			defer font.SetStyle(ttf.STYLE_NORMAL)
		}
		texture = renderText(renderer, glyph, font, color)
		if texture == nil {
			return
		}
		cache.Set(key, texture)
	}

	_, _, w, h, _ := texture.Query()
	renderer.Copy(texture, nil, &sdl.Rect{
		X: rect.X + (rect.W-w)/2,
		Y: rect.Y + (rect.H-h)/2,
		W: w,
		H: h,
	})
}

func drawCustomIcon(renderer *sdl.Renderer, icon CustomIcon, rect sdl.Rect, color sdl.Color, cache *internal.TextureCache) {
	if len(icon.SVG) == 0 {
		return
	}

	key := fmt.Sprintf("svg|%p|%dx%d", &icon.SVG[0], rect.W, rect.H)
	texture := cache.Get(key)
	if texture == nil {
		surface, err := internal.RasterizeSVG(icon.SVG, rect.W, rect.H)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to rasterize custom icon", "error", NewInfrastructureError("rasterize_icon", err))
			return
		}
		defer surface.Free()

		texture, err = renderer.CreateTextureFromSurface(surface)
		if err != nil {
			return
		}
		cache.Set(key, texture)
	}

	texture.SetColorMod(color.R, color.G, color.B)
	renderer.Copy(texture, nil, &rect)
}

func renderText(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color) *sdl.Texture {
	if text == "" {
		return nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil
	}

	return texture
}

// truncateLines splits text into at most maxLines lines by character
// measure. Soft wrap is off: there is no word-boundary preference, so
// overflow truncates deterministically, with an ellipsis on the final line
// when text remains.
func truncateLines(text string, font *ttf.Font, maxWidth int32, maxLines int) []string {
	if text == "" || maxWidth <= 0 {
		return nil
	}

	lines := make([]string, 0, maxLines)
	remaining := []rune(text)

	for len(remaining) > 0 && len(lines) < maxLines {
		last := len(lines) == maxLines-1

		n := fitRunes(remaining, font, maxWidth)
		if n >= len(remaining) {
			lines = append(lines, string(remaining))
			return lines
		}

		if last {
			line := remaining[:n]
			for len(line) > 0 {
				if w, _, err := font.SizeUTF8(string(line) + "…"); err != nil || int32(w) <= maxWidth {
					break
				}
				line = line[:len(line)-1]
			}
			lines = append(lines, string(line)+"…")
			return lines
		}

		lines = append(lines, string(remaining[:n]))
		remaining = remaining[n:]
	}

	return lines
}

// fitRunes returns how many leading runes fit within maxWidth.
func fitRunes(runes []rune, font *ttf.Font, maxWidth int32) int {
	if w, _, err := font.SizeUTF8(string(runes)); err != nil || int32(w) <= maxWidth {
		return len(runes)
	}

	lo, hi := 1, len(runes)
	for lo < hi {
		mid := (lo + hi) / 2
		w, _, err := font.SizeUTF8(string(runes[:mid]))
		if err != nil || int32(w) <= maxWidth {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo > 1 {
		return lo - 1
	}
	return 1
}

func colorKey(c sdl.Color) string {
	return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// titleCacheKey distinguishes cached title textures by every input that
// changes the rendered bitmap, including the resolved text size.
func titleCacheKey(line string, color sdl.Color, width, size int32) string {
	return fmt.Sprintf("title|%s|%s|%d|%d", line, colorKey(color), width, size)
}
