package shape

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

func alphaAt(img *image.NRGBA, x, y int) uint8 {
	return img.NRGBAAt(x, y).A
}

func TestShape_RectIsInclusive(t *testing.T) {
	assert := assert.New(t)
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))

	Rect(img, 2, 2, 4, 4, white)

	assert.Equal(uint8(0xff), alphaAt(img, 2, 2))
	assert.Equal(uint8(0xff), alphaAt(img, 4, 4))
	assert.Equal(uint8(0), alphaAt(img, 5, 5))
	assert.Equal(uint8(0), alphaAt(img, 1, 2))
}

func TestShape_RectShouldClipOutsideCanvas(t *testing.T) {
	assert := assert.New(t)
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))

	Rect(img, -10, 3, 20, 5, white)

	for x := 0; x < 10; x++ {
		assert.Equal(uint8(0xff), alphaAt(img, x, 4))
		assert.Equal(uint8(0), alphaAt(img, x, 7))
	}
}

func TestShape_LineWidth(t *testing.T) {
	assert := assert.New(t)
	img := image.NewNRGBA(image.Rect(0, 0, 12, 12))

	Line(img, 0, 5, 12, 5, 3, white)

	assert.Equal(uint8(0xff), alphaAt(img, 6, 4))
	assert.Equal(uint8(0xff), alphaAt(img, 6, 5))
	assert.Equal(uint8(0xff), alphaAt(img, 6, 6))
	assert.Equal(uint8(0), alphaAt(img, 6, 3))
	assert.Equal(uint8(0), alphaAt(img, 6, 7))
}

func TestShape_ZeroLengthLineDrawsNothing(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	Line(img, 1, 1, 1, 1, 3, white)

	for _, p := range img.Pix {
		assert.Equal(t, uint8(0), p)
	}
}

func TestShape_Ellipse(t *testing.T) {
	assert := assert.New(t)
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))

	Ellipse(img, 6, 6, 14, 14, white)

	assert.Equal(uint8(0xff), alphaAt(img, 10, 10))
	assert.Equal(uint8(0), alphaAt(img, 6, 6))
	assert.Equal(uint8(0), alphaAt(img, 0, 0))
}

func TestShape_RoundedRectCorners(t *testing.T) {
	assert := assert.New(t)
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))

	RoundedRect(img, 0, 0, 19, 19, 6, white)

	assert.Equal(uint8(0xff), alphaAt(img, 10, 10))
	assert.Equal(uint8(0xff), alphaAt(img, 10, 0))
	assert.Equal(uint8(0), alphaAt(img, 0, 0))
	assert.Equal(uint8(0), alphaAt(img, 19, 19))
}

func TestShape_OffsetCanvas(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 10, 20, 20))

	Rect(img, 12, 12, 13, 13, white)

	assert.Equal(t, uint8(0xff), alphaAt(img, 12, 12))
	assert.Equal(t, uint8(0), alphaAt(img, 10, 10))
}
