// Package braciole provides the overlay pull-down menu components for
// graphical applications on embedded Linux devices, particularly handheld
// gaming consoles running custom firmware like NextUI or Cannoli.
//
// The package handles SDL initialization, theming, touch input, and provides
// the menu item resolution and interaction pipeline: style cascade, size
// variants, pointer feedback, and overlay-aware tap dispatch.
package braciole

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/BrandonKowalski/braciole/pkg/braciole/platform/cannoli"
)

// Options configures the braciole framework initialization.
type Options struct {
	WindowTitle     string                 // Window title displayed in windowed mode
	ShowBackground  bool                   // Whether to render the theme background
	WindowOptions   internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	ThemeFile       string                 // Path to a Cannoli-style TOML theme file; empty uses defaults
	FontPath        string                 // Path to the primary UI font
	IconFontPath    string                 // Path to the icon glyph font
	AccentColorHex  uint32                 // Custom destructive/accent color override
	TouchDevicePath string                 // evdev touchscreen device; empty disables the touch reader
	LogPath         string                 // Full path for log file including filename (creates parent directories)
	Languages       []string               // Preferred languages for built-in strings
}

// Init initializes the SDL subsystems, theming, and input handling.
// Must be called before any other braciole functions.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if len(options.Languages) > 0 {
		internal.SetLanguages(options.Languages...)
	}

	theme := cannoli.InitCannoliTheme(options.FontPath, options.IconFontPath)
	if options.ThemeFile != "" {
		loaded, err := cannoli.LoadThemeFile(options.ThemeFile, options.FontPath, options.IconFontPath)
		if err != nil {
			internal.GetInternalLogger().Warn("Failed to load theme file; using defaults", "path", options.ThemeFile, "error", err)
		} else {
			theme = loaded
		}
	}

	if options.AccentColorHex != 0 {
		theme.DestructiveColor = internal.HexToColor(options.AccentColorHex)
	}

	internal.SetTheme(theme)

	internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions)

	touchDevice := options.TouchDevicePath
	if v := os.Getenv(constants.TouchDeviceEnvVar); v != "" {
		touchDevice = v
	}
	if touchDevice != "" {
		if err := internal.StartTouchReader(touchDevice); err != nil {
			internal.GetInternalLogger().Warn("Touch input unavailable", "device", touchDevice, "error", err)
		}
	}
}

// Close releases all SDL resources and shuts down the framework.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// TouchEvents returns the touchscreen pointer event stream, or nil when no
// touch device is configured. Drain it once per frame and feed items through
// MenuItem.HandleTouch.
func TouchEvents() <-chan internal.PointerEvent {
	return internal.TouchEvents()
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}

// HideWindow hides the application window.
func HideWindow() {
	internal.GetWindow().Window.Hide()
}

// ShowWindow shows the application window.
func ShowWindow() {
	internal.GetWindow().Window.Show()
}
