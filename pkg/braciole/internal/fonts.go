package internal

import (
	"github.com/veandco/go-sdl2/ttf"
)

type fontKey struct {
	path string
	size int
}

var fontCache map[fontKey]*ttf.Font

func initFonts() {
	fontCache = make(map[fontKey]*ttf.Font)
}

// LoadFont opens a font at the given point size, caching open handles.
// Repeated calls with the same path and size return the same *ttf.Font.
func LoadFont(path string, size int32) (*ttf.Font, error) {
	key := fontKey{path: path, size: int(size)}
	if font, ok := fontCache[key]; ok {
		return font, nil
	}

	font, err := ttf.OpenFont(path, int(size))
	if err != nil {
		return nil, err
	}

	fontCache[key] = font
	return font, nil
}

func closeFonts() {
	for _, font := range fontCache {
		font.Close()
	}
	fontCache = nil
}
