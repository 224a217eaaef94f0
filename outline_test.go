package osdfont

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutline_DistanceField(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 11, 11))
	img.SetNRGBA(5, 5, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	field := DistanceField(img)
	at := func(x, y int) uint8 { return field[y*11+x] }

	assert := assert.New(t)
	assert.Len(field, 11*11)
	assert.Equal(uint8(noDistance), at(5, 5), "solid pixels have no distance")
	assert.Equal(uint8(1), at(6, 5))
	assert.Equal(uint8(2), at(4, 4))
	assert.Equal(uint8(16), at(1, 5))
	assert.Equal(uint8(13), at(7, 8))
	assert.Equal(uint8(noDistance), at(8, 8), "corners are outside of the octagon")
	assert.Equal(uint8(noDistance), at(0, 5), "out of the kernel range")
}

func TestOutline_IgnoresFaintPixels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 5, 5))
	img.SetNRGBA(2, 2, color.NRGBA{R: 255, G: 255, B: 255, A: solidThreshold})

	for _, d := range DistanceField(img) {
		assert.Equal(t, uint8(noDistance), d)
	}
}

func TestOutline_Alpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 11, 11))
	img.SetNRGBA(5, 5, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	out := Outline(img, DefaultOutlineRadius, DefaultOutlineOpacity)

	assert := assert.New(t)
	assert.Equal(img.Bounds(), out.Bounds())
	assert.Equal(color.NRGBA{R: 255, G: 255, B: 255, A: 255}, out.NRGBAAt(5, 5))
	// Inside the radius the outline has full strength.
	assert.Equal(color.NRGBA{A: 84}, out.NRGBAAt(6, 5))
	assert.Equal(color.NRGBA{A: 84}, out.NRGBAAt(8, 5))
	// sqrt(10) is past the radius, the outline fades out.
	assert.Equal(color.NRGBA{A: 70}, out.NRGBAAt(8, 6))
	assert.Equal(color.NRGBA{}, out.NRGBAAt(9, 5))
	assert.Equal(color.NRGBA{}, out.NRGBAAt(0, 0))
}

func TestOutline_TransparentImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, TileWidth, TileHeight))
	out := Outline(img, DefaultOutlineRadius, DefaultOutlineOpacity)

	assert.Equal(t, img.Bounds(), out.Bounds())
	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 0 {
			t.Fatalf("expected a transparent image, got alpha %d at %d", out.Pix[i], i/4)
		}
	}
}

func TestOutline_ParallelRowsCoversRange(t *testing.T) {
	for _, h := range []int{0, 1, 7, 54, 864} {
		seen := make([]int32, h)
		parallelRows(h, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				seen[y]++
			}
		})
		for y, n := range seen {
			assert.Equalf(t, int32(1), n, "row %d of %d", y, h)
		}
	}
}
