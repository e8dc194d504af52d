package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the menu framework.
// Colors are typically loaded from CFW theme files (NextUI, Cannoli).
type Theme struct {
	TextColor           sdl.Color // Default item text color
	HoveredTextColor    sdl.Color // Item text color while hovered
	DisabledTextColor   sdl.Color // Item text color when the item is disabled
	DestructiveColor    sdl.Color // Text/icon color for destructive items
	HoverColor          sdl.Color // Row background tint while hovered
	PressedColor        sdl.Color // Row background tint while pressed
	DividerColor        sdl.Color // Separator lines between items
	BackgroundColor     sdl.Color // Menu surface background color
	FontPath            string    // Path to the primary UI font
	IconFontPath        string    // Path to the icon glyph font
	BackgroundImagePath string    // Path to the background image
}

var currentTheme Theme

// SetTheme sets the active theme for the framework.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts a 0xRRGGBB value to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}
