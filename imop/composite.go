// Package imop implements the Porter-Duff source-over composition
// used for mixing a graphic element with its backdrop.
// Unlike draw.Over from the image/draw core package it works on
// non-premultiplied NRGBA images and returns a fresh image.
//
// It is used to lay the rendered glyphs over their soft outline
// and the finished template over the preview backdrop.
package imop

import (
	"image"
	"math"

	"github.com/osdicons/osdfont/utils"
)

// Over returns src composited over the dst backdrop.
// The images are aligned on their top left corner and only their common area is
// processed. The result has the size of src, the area outside dst stays transparent.
func Over(src, dst *image.NRGBA) *image.NRGBA {
	sb, db := src.Bounds(), dst.Bounds()
	out := image.NewNRGBA(sb.Sub(sb.Min))

	dx := utils.Min(sb.Dx(), db.Dx())
	dy := utils.Min(sb.Dy(), db.Dy())

	for y := 0; y < dy; y++ {
		si := src.PixOffset(sb.Min.X, sb.Min.Y+y)
		di := dst.PixOffset(db.Min.X, db.Min.Y+y)
		oi := out.PixOffset(0, y)

		for x := 0; x < dx; x++ {
			s := src.Pix[si : si+4 : si+4]
			d := dst.Pix[di : di+4 : di+4]
			o := out.Pix[oi : oi+4 : oi+4]

			as := float64(s[3]) / 255
			ab := float64(d[3]) / 255
			// source-over: Fa = 1, Fb = 1 - as
			fb := 1 - as

			an := as + ab*fb
			if an > 0 {
				for c := 0; c < 3; c++ {
					cs := float64(s[c]) / 255
					cb := float64(d[c]) / 255
					cn := (as*cs + ab*cb*fb) / an
					o[c] = uint8(math.Round(math.Min(cn, 1) * 255))
				}
				o[3] = uint8(math.Round(math.Min(an, 1) * 255))
			}

			si += 4
			di += 4
			oi += 4
		}
	}

	return out
}
