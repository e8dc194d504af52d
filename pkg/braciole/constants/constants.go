// Package constants defines shared constants, types, and configuration values
// used throughout the braciole menu framework.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// WindowWidthEnvVar is the environment variable name for the dev-mode window width.
const WindowWidthEnvVar = "WINDOW_WIDTH"

// WindowHeightEnvVar is the environment variable name for the dev-mode window height.
const WindowHeightEnvVar = "WINDOW_HEIGHT"

// TouchDeviceEnvVar is the environment variable name for a custom touchscreen device path.
const TouchDeviceEnvVar = "TOUCH_DEVICE"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// FontWeight selects which font face variant renders a glyph.
type FontWeight int

const (
	FontWeightRegular FontWeight = iota
	FontWeightMedium
	FontWeightSemiBold
	FontWeightBold
)

// LargeTextScale is the text-scale factor above which menu items switch to
// their large-text layout (trailing icon dropped, extra title line allowed).
const LargeTextScale float32 = 1.25

// Default timing and spacing constants.
const (
	DefaultInputDelay          = 20 * time.Millisecond  // Debounce delay between input events
	DefaultCloseDuration       = 250 * time.Millisecond // Overlay close animation length
	DefaultItemHeight    int32 = 44                     // Full variant row height at scale 1.0
	DefaultCompactSide   int32 = 44                     // Compact variant square side
	DefaultStandardWidth int32 = 80                     // Standard variant column width
)
