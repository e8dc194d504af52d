package internal

import (
	"bytes"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// RasterizeSVG renders SVG bytes into an SDL surface of the given size.
// The pixels are copied into SDL-owned memory, so the surface outlives the
// rasterization buffer. The caller owns the returned surface and must Free it.
func RasterizeSVG(data []byte, width, height int32) (*sdl.Surface, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	scanner := rasterx.NewScannerGV(int(width), int(height), rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(int(width), int(height), scanner), 1.0)

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, width, height, 32, sdl.PIXELFORMAT_ABGR8888)
	if err != nil {
		return nil, err
	}

	// The surface pitch is not guaranteed to equal width*4.
	pixels := surface.Pixels()
	pitch := int(surface.Pitch)
	rowLen := int(width) * 4
	for y := 0; y < int(height); y++ {
		copy(pixels[y*pitch:y*pitch+rowLen], rgba.Pix[y*rgba.Stride:y*rgba.Stride+rowLen])
	}

	return surface, nil
}
