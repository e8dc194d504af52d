// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"
)

// InitCannoliTheme creates a theme with Cannoli's default colors and the
// specified fonts.
func InitCannoliTheme(fontPath, iconFontPath string) internal.Theme {
	return internal.Theme{
		TextColor:         internal.HexToColor(0xFFFFFF),
		HoveredTextColor:  internal.HexToColor(0x000000),
		DisabledTextColor: sdl.Color{R: 255, G: 255, B: 255, A: 96},
		DestructiveColor:  internal.HexToColor(0xFF453A),
		HoverColor:        sdl.Color{R: 255, G: 255, B: 255, A: 24},
		PressedColor:      sdl.Color{R: 255, G: 255, B: 255, A: 48},
		DividerColor:      sdl.Color{R: 255, G: 255, B: 255, A: 32},
		BackgroundColor:   internal.HexToColor(0x1C1C1E),
		FontPath:          fontPath,
		IconFontPath:      iconFontPath,
	}
}

// themeFile is the on-disk TOML shape of a Cannoli menu theme. All fields
// are optional; missing values keep the Cannoli defaults.
type themeFile struct {
	TextColor         string `toml:"text_color"`
	HoveredTextColor  string `toml:"hovered_text_color"`
	DisabledTextColor string `toml:"disabled_text_color"`
	DestructiveColor  string `toml:"destructive_color"`
	HoverColor        string `toml:"hover_color"`
	PressedColor      string `toml:"pressed_color"`
	DividerColor      string `toml:"divider_color"`
	BackgroundColor   string `toml:"background_color"`
	BackgroundImage   string `toml:"background_image"`
}

// LoadThemeFile reads a Cannoli TOML theme file, filling unspecified fields
// from the defaults.
func LoadThemeFile(path, fontPath, iconFontPath string) (internal.Theme, error) {
	theme := InitCannoliTheme(fontPath, iconFontPath)

	var file themeFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return theme, fmt.Errorf("decode theme file: %w", err)
	}

	applyColor(&theme.TextColor, file.TextColor)
	applyColor(&theme.HoveredTextColor, file.HoveredTextColor)
	applyColor(&theme.DisabledTextColor, file.DisabledTextColor)
	applyColor(&theme.DestructiveColor, file.DestructiveColor)
	applyColor(&theme.HoverColor, file.HoverColor)
	applyColor(&theme.PressedColor, file.PressedColor)
	applyColor(&theme.DividerColor, file.DividerColor)
	applyColor(&theme.BackgroundColor, file.BackgroundColor)

	if file.BackgroundImage != "" {
		theme.BackgroundImagePath = file.BackgroundImage
	}

	return theme, nil
}

// applyColor parses a "#RRGGBB" or "#RRGGBBAA" value onto dst, leaving dst
// untouched on empty or malformed input.
func applyColor(dst *sdl.Color, value string) {
	value = strings.TrimPrefix(strings.TrimSpace(value), "#")
	if value == "" {
		return
	}

	parsed, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		internal.GetInternalLogger().Warn("Ignoring malformed theme color", "value", value, "error", err)
		return
	}

	switch len(value) {
	case 6:
		*dst = internal.HexToColor(uint32(parsed))
	case 8:
		*dst = sdl.Color{
			R: uint8(parsed >> 24),
			G: uint8(parsed >> 16),
			B: uint8(parsed >> 8),
			A: uint8(parsed),
		}
	default:
		internal.GetInternalLogger().Warn("Ignoring theme color with unexpected length", "value", value)
	}
}
