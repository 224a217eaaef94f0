// Package shape draws anti-aliased primitives onto raster images.
//
// Coordinates address pixels the way most raster editors do: the integer
// coordinate n names the pixel n, and bounding boxes are inclusive, so a
// rectangle from (0, 0) to (2, 2) covers a 3x3 block. Fractional and
// out-of-canvas coordinates are allowed, and anything outside the
// destination is clipped.
package shape

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/osdicons/osdfont/utils"
	"golang.org/x/image/vector"
)

// kappa is the cubic Bézier control distance approximating a quarter circle.
const kappa = 0.5522847498

// Rect fills the rectangle spanning the pixels (x0, y0) to (x1, y1) inclusive.
func Rect(dst draw.Image, x0, y0, x1, y1 float32, c color.Color) {
	x0, y0, x1, y1 = normRect(x0, y0, x1, y1)
	fill(dst, c, func(z *vector.Rasterizer, ox, oy float32) {
		z.MoveTo(x0-ox, y0-oy)
		z.LineTo(x1+1-ox, y0-oy)
		z.LineTo(x1+1-ox, y1+1-oy)
		z.LineTo(x0-ox, y1+1-oy)
		z.ClosePath()
	})
}

// RoundedRect fills a rectangle whose corners are rounded with radius r.
// The radius is clamped to half of the shorter side.
func RoundedRect(dst draw.Image, x0, y0, x1, y1, r float32, c color.Color) {
	x0, y0, x1, y1 = normRect(x0, y0, x1, y1)
	x1++
	y1++

	r = utils.Min(r, utils.Min(x1-x0, y1-y0)/2)
	if r <= 0 {
		Rect(dst, x0, y0, x1-1, y1-1, c)
		return
	}
	k := r * kappa

	fill(dst, c, func(z *vector.Rasterizer, ox, oy float32) {
		ax, ay, bx, by := x0-ox, y0-oy, x1-ox, y1-oy

		z.MoveTo(ax+r, ay)
		z.LineTo(bx-r, ay)
		z.CubeTo(bx-r+k, ay, bx, ay+r-k, bx, ay+r)
		z.LineTo(bx, by-r)
		z.CubeTo(bx, by-r+k, bx-r+k, by, bx-r, by)
		z.LineTo(ax+r, by)
		z.CubeTo(ax+r-k, by, ax, by-r+k, ax, by-r)
		z.LineTo(ax, ay+r)
		z.CubeTo(ax, ay+r-k, ax+r-k, ay, ax+r, ay)
		z.ClosePath()
	})
}

// Ellipse fills the ellipse inscribed in the inclusive bounding box.
func Ellipse(dst draw.Image, x0, y0, x1, y1 float32, c color.Color) {
	x0, y0, x1, y1 = normRect(x0, y0, x1, y1)

	rx, ry := (x1+1-x0)/2, (y1+1-y0)/2
	cx, cy := x0+rx, y0+ry
	kx, ky := rx*kappa, ry*kappa

	fill(dst, c, func(z *vector.Rasterizer, ox, oy float32) {
		cx, cy := cx-ox, cy-oy

		z.MoveTo(cx+rx, cy)
		z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
		z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
		z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
		z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
		z.ClosePath()
	})
}

// Line strokes the segment between the two pixels with the given width.
// The segment is centred on the pixels and the ends are cut square.
func Line(dst draw.Image, x0, y0, x1, y1, width float32, c color.Color) {
	dx, dy := float64(x1-x0), float64(y1-y0)
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	nx := float32(-dy / length * float64(width) / 2)
	ny := float32(dx / length * float64(width) / 2)

	// Shift to the pixel centres.
	x0, y0, x1, y1 = x0+0.5, y0+0.5, x1+0.5, y1+0.5

	fill(dst, c, func(z *vector.Rasterizer, ox, oy float32) {
		z.MoveTo(x0+nx-ox, y0+ny-oy)
		z.LineTo(x1+nx-ox, y1+ny-oy)
		z.LineTo(x1-nx-ox, y1-ny-oy)
		z.LineTo(x0-nx-ox, y0-ny-oy)
		z.ClosePath()
	})
}

// fill rasterizes the path built by fn and composites it over dst using c.
// The path callback receives the destination origin to subtract from its points.
func fill(dst draw.Image, c color.Color, fn func(z *vector.Rasterizer, ox, oy float32)) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	fn(z, float32(b.Min.X), float32(b.Min.Y))
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func normRect(x0, y0, x1, y1 float32) (float32, float32, float32, float32) {
	return utils.Min(x0, x1), utils.Min(y0, y1), utils.Max(x0, x1), utils.Max(y0, y1)
}
