package icons

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/exp/shiny/iconvg"
)

// whitePalette forces every palette-driven color of an icon to opaque white,
// so that only the coverage of the vector shapes ends up in the alpha channel.
var whitePalette = func() iconvg.Palette {
	var p iconvg.Palette
	for i := range p {
		p[i] = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return p
}()

// Rasterize renders the IconVG graphic into a w x h image.
// The graphic keeps its aspect ratio and is centred in the image.
// The returned pixels are white and their alpha holds the shape coverage.
func Rasterize(data []byte, w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid icon size %dx%d", w, h)
	}

	m, err := iconvg.DecodeMetadata(data)
	if err != nil {
		return nil, fmt.Errorf("could not decode icon metadata: %w", err)
	}

	rect := fitRect(m.ViewBox, w, h)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	var z iconvg.Rasterizer
	z.SetDstImage(dst, rect, draw.Over)
	if err := iconvg.Decode(&z, data, &iconvg.DecodeOptions{Palette: &whitePalette}); err != nil {
		return nil, fmt.Errorf("could not rasterize icon: %w", err)
	}

	out := image.NewNRGBA(dst.Bounds())
	for i := 0; i < len(dst.Pix); i += 4 {
		out.Pix[i+0] = 0xff
		out.Pix[i+1] = 0xff
		out.Pix[i+2] = 0xff
		out.Pix[i+3] = dst.Pix[i+3]
	}

	return out, nil
}

// fitRect returns the largest rectangle with the view box aspect ratio fitting into w x h.
func fitRect(vb iconvg.Rectangle, w, h int) image.Rectangle {
	vw, vh := vb.Max[0]-vb.Min[0], vb.Max[1]-vb.Min[1]
	if vw <= 0 || vh <= 0 {
		return image.Rect(0, 0, w, h)
	}

	rw, rh := w, int(float32(w)*vh/vw+0.5)
	if rh > h {
		rw, rh = int(float32(h)*vw/vh+0.5), h
	}
	x, y := (w-rw)/2, (h-rh)/2

	return image.Rect(x, y, x+rw, y+rh)
}
