package cannoli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func writeThemeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadThemeFile(t *testing.T) {
	path := writeThemeFile(t, `
text_color = "#FF0000"
pressed_color = "#00FF0080"
background_image = "/mnt/SDCARD/bg.png"
`)

	theme, err := LoadThemeFile(path, "/fonts/ui.ttf", "/fonts/icons.ttf")
	require.NoError(t, err)

	assert.Equal(t, internal.HexToColor(0xFF0000), theme.TextColor)
	assert.Equal(t, sdl.Color{G: 255, A: 128}, theme.PressedColor)
	assert.Equal(t, "/mnt/SDCARD/bg.png", theme.BackgroundImagePath)
	assert.Equal(t, "/fonts/ui.ttf", theme.FontPath)
	assert.Equal(t, "/fonts/icons.ttf", theme.IconFontPath)

	// Unspecified fields keep the Cannoli defaults.
	defaults := InitCannoliTheme("/fonts/ui.ttf", "/fonts/icons.ttf")
	assert.Equal(t, defaults.DestructiveColor, theme.DestructiveColor)
	assert.Equal(t, defaults.HoverColor, theme.HoverColor)
}

func TestLoadThemeFileIgnoresMalformedColors(t *testing.T) {
	path := writeThemeFile(t, `
text_color = "not-a-color"
destructive_color = "#FFF"
`)

	theme, err := LoadThemeFile(path, "", "")
	require.NoError(t, err)

	defaults := InitCannoliTheme("", "")
	assert.Equal(t, defaults.TextColor, theme.TextColor)
	assert.Equal(t, defaults.DestructiveColor, theme.DestructiveColor)
}

func TestLoadThemeFileMissingFile(t *testing.T) {
	theme, err := LoadThemeFile(filepath.Join(t.TempDir(), "missing.toml"), "/fonts/ui.ttf", "")
	assert.Error(t, err)

	// The defaults still come back so callers can fall through.
	assert.Equal(t, InitCannoliTheme("/fonts/ui.ttf", "").TextColor, theme.TextColor)
}
