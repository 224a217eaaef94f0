package osdfont

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// textFont wraps a parsed TrueType/OpenType font.
// The parsed font is safe for concurrent use, the faces created from it are not,
// so every drawing call creates its own face.
type textFont struct {
	f *opentype.Font
}

func parseFont(ttf []byte) (*textFont, error) {
	if len(ttf) == 0 {
		ttf = gobold.TTF
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("could not parse the font: %w", err)
	}
	return &textFont{f: f}, nil
}

func (tf *textFont) face(size float64) (font.Face, error) {
	return opentype.NewFace(tf.f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// anchor tells which point of the text is placed at the drawing position.
type anchor int

const (
	// left side of the text on the baseline
	anchorLeftBaseline anchor = iota
	// horizontal middle of the text on the baseline
	anchorMiddleBaseline
)

// measure returns the advance of s and how far its ink reaches below the baseline.
func measure(face font.Face, s string) (advance, descent float64) {
	bounds, adv := font.BoundString(face, s)
	return fixedToFloat(adv), fixedToFloat(bounds.Max.Y)
}

// drawText draws s in white with its anchor point at (x, y).
func drawText(dst *image.NRGBA, face font.Face, s string, x, y float64, a anchor) {
	if a == anchorMiddleBaseline {
		adv, _ := measure(face, s)
		x -= adv / 2
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(s)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
