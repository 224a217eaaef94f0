package osdfont

import (
	"image"
	"math"
	"runtime"
	"sync"

	"github.com/osdicons/osdfont/imop"
	"github.com/osdicons/osdfont/utils"
)

const (
	// DefaultOutlineRadius is the distance in pixels at which the outline starts to fade.
	DefaultOutlineRadius = 3.0
	// DefaultOutlineOpacity is the opacity of the outline at full strength.
	DefaultOutlineOpacity = 0.33

	// solidThreshold is the alpha above which a pixel casts an outline.
	solidThreshold = 100
	// noDistance marks pixels that are solid or have no solid pixel within the kernel.
	noDistance = 255
)

// octagon is the 9x9 search kernel of the distance transform.
var octagon = [9][9]uint8{
	{0, 0, 0, 1, 1, 1, 0, 0, 0},
	{0, 0, 1, 1, 1, 1, 1, 0, 0},
	{0, 1, 1, 1, 1, 1, 1, 1, 0},
	{1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1},
	{0, 1, 1, 1, 1, 1, 1, 1, 0},
	{0, 0, 1, 1, 1, 1, 1, 0, 0},
	{0, 0, 0, 1, 1, 1, 0, 0, 0},
}

type kernelOffset struct {
	dx, dy int
	dist   uint8
}

// kernel holds the octagon offsets ordered by increasing squared distance,
// so the first solid hit is also the nearest one.
var kernel = func() []kernelOffset {
	var offs []kernelOffset
	for y := range octagon {
		for x := range octagon[y] {
			if octagon[y][x] == 0 {
				continue
			}
			dx, dy := x-4, y-4
			offs = append(offs, kernelOffset{dx: dx, dy: dy, dist: uint8(dx*dx + dy*dy)})
		}
	}
	// insertion sort keeps the row-major order among equal distances
	for i := 1; i < len(offs); i++ {
		for j := i; j > 0 && offs[j].dist < offs[j-1].dist; j-- {
			offs[j], offs[j-1] = offs[j-1], offs[j]
		}
	}
	return offs
}()

// DistanceField computes for every pixel the squared distance to the nearest
// solid pixel of img inside a 9x9 octagonal neighbourhood. Solid pixels and
// pixels without a solid neighbour are set to 255. The result is stored row-major.
func DistanceField(img *image.NRGBA) []uint8 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	solid := make([]bool, w*h)
	for y := 0; y < h; y++ {
		i := img.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < w; x++ {
			solid[y*w+x] = img.Pix[i+3] > solidThreshold
			i += 4
		}
	}

	field := make([]uint8, w*h)
	parallelRows(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				d := uint8(noDistance)
				for _, k := range kernel {
					px, py := x+k.dx, y+k.dy
					if px < 0 || px >= w || py < 0 || py >= h {
						continue
					}
					if solid[py*w+px] {
						d = k.dist
						break
					}
				}
				// A zero distance means the pixel itself is solid.
				if d == 0 {
					d = noDistance
				}
				field[y*w+x] = d
			}
		}
	})

	return field
}

// Outline draws a soft black outline around the opaque parts of img
// and returns img composited over it. The outline is fully opaque up to
// radius pixels away from the shape, fades out over the next pixel and is
// finally scaled by opacity.
func Outline(img *image.NRGBA, radius, opacity float64) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	field := DistanceField(img)

	shadow := image.NewNRGBA(image.Rect(0, 0, w, h))
	r2 := radius * radius

	for i, d := range field {
		if d == noDistance {
			continue
		}
		var a float64
		if float64(d) <= r2 {
			a = 255
		} else if dist := math.Sqrt(float64(d)); dist < radius+1 {
			a = (1 - (dist - radius)) * 255
		}
		shadow.Pix[i*4+3] = uint8(utils.Clamp(math.Floor(a)*opacity, 0, 255))
	}

	src := img
	if b.Min != (image.Point{}) {
		src = imgToNRGBA(img)
	}
	return imop.Over(src, shadow)
}

// parallelRows splits the [0, h) row range between the available CPUs.
func parallelRows(h int, fn func(y0, y1 int)) {
	n := utils.Min(runtime.GOMAXPROCS(0), h)
	if n <= 1 {
		fn(0, h)
		return
	}

	var wg sync.WaitGroup
	step := (h + n - 1) / n
	for y0 := 0; y0 < h; y0 += step {
		y1 := utils.Min(y0+step, h)
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			fn(y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}
