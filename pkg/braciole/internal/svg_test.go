package internal

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterizeSVG(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="8" height="8"><rect width="8" height="8" fill="#ff0000"/></svg>`)

	surface, err := RasterizeSVG(svg, 8, 8)
	require.NoError(t, err)
	defer surface.Free()

	assert.Equal(t, int32(8), surface.W)
	assert.Equal(t, int32(8), surface.H)

	// The surface owns its pixels; the fill must survive the rasterization
	// buffer going out of scope.
	got := color.RGBAModel.Convert(surface.At(4, 4)).(color.RGBA)
	assert.Equal(t, uint8(255), got.R)
	assert.Equal(t, uint8(0), got.G)
	assert.Equal(t, uint8(0), got.B)
	assert.Equal(t, uint8(255), got.A)
}

func TestRasterizeSVGRejectsMalformedInput(t *testing.T) {
	_, err := RasterizeSVG([]byte("not an svg document"), 8, 8)
	assert.Error(t, err)
}
