package osdfont

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/osdicons/osdfont/utils"
	"golang.org/x/image/bmp"
)

// ErrUnsupportedFormat is returned when encoding to a format which cannot hold the template.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// DecodeImage opens the image file found at path.
func DecodeImage(path string) (image.Image, error) {
	ctype, err := utils.DetectContentType(path)
	if err != nil {
		return nil, fmt.Errorf("could not open the image file: %w", err)
	}
	if !utils.IsImage(ctype) {
		return nil, fmt.Errorf("%s is not an image file (%s)", path, ctype)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not decode the image file: %w", err)
	}
	return img, nil
}

// Encode writes img to w in the format matching the file extension ext.
// An empty extension selects PNG. Only lossless formats with an alpha channel
// are accepted.
func Encode(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case "", ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// EncodeFile writes img into the file at path, choosing the format by the file extension.
func EncodeFile(path string, img image.Image) (err error) {
	ext := extOf(path)
	if !IsSupportedExt(ext) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return Encode(f, img, ext)
}

// IsSupportedExt reports whether Encode can write the format denoted by ext.
func IsSupportedExt(ext string) bool {
	switch strings.ToLower(ext) {
	case ".png", ".bmp":
		return true
	}
	return false
}

func extOf(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 && !strings.ContainsAny(path[i:], `/\`) {
		return path[i:]
	}
	return ""
}

// imgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
// The returned image never shares its pixels with the source.
func imgToNRGBA(img image.Image) *image.NRGBA {
	srcBounds := img.Bounds()
	srcMinX := srcBounds.Min.X
	srcMinY := srcBounds.Min.Y

	dstBounds := srcBounds.Sub(srcBounds.Min)
	dstW := dstBounds.Dx()
	dstH := dstBounds.Dy()
	dst := image.NewNRGBA(dstBounds)

	switch src := img.(type) {
	case *image.NRGBA:
		rowSize := dstW * 4
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			si := src.PixOffset(srcMinX, srcMinY+dstY)
			copy(dst.Pix[di:di+rowSize], src.Pix[si:si+rowSize])
		}
	case *image.YCbCr:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				srcX := srcMinX + dstX
				srcY := srcMinY + dstY
				siy := src.YOffset(srcX, srcY)
				sic := src.COffset(srcX, srcY)
				r, g, b := color.YCbCrToRGB(src.Y[siy], src.Cb[sic], src.Cr[sic])
				dst.Pix[di+0] = r
				dst.Pix[di+1] = g
				dst.Pix[di+2] = b
				dst.Pix[di+3] = 0xff
				di += 4
			}
		}
	default:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				c := color.NRGBAModel.Convert(img.At(srcMinX+dstX, srcMinY+dstY)).(color.NRGBA)
				dst.Pix[di+0] = c.R
				dst.Pix[di+1] = c.G
				dst.Pix[di+2] = c.B
				dst.Pix[di+3] = c.A
				di += 4
			}
		}
	}

	return dst
}

// dimmed drops the alpha channel of img and lightens it towards mid grey.
// Every color channel v becomes v*0.25+128.
func dimmed(img image.Image, w, h int) *image.NRGBA {
	src := imgToNRGBA(img)
	sb := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		di := dst.PixOffset(0, y)
		for x := 0; x < w; x++ {
			var r, g, b uint8
			if x < sb.Dx() && y < sb.Dy() {
				si := src.PixOffset(x, y)
				r, g, b = src.Pix[si], src.Pix[si+1], src.Pix[si+2]
			}
			dst.Pix[di+0] = dim(r)
			dst.Pix[di+1] = dim(g)
			dst.Pix[di+2] = dim(b)
			dst.Pix[di+3] = 0xff
			di += 4
		}
	}

	return dst
}

func dim(v uint8) uint8 {
	return uint8(float64(v)*0.25 + 128)
}

// checkerboard generates a backdrop alternating two dark greys tile by tile,
// which makes the tile boundaries visible in the preview.
func checkerboard(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	dark := [2]uint8{0x20, 0x50}

	for y := 0; y < h; y++ {
		i := img.PixOffset(0, y)
		for x := 0; x < w; x++ {
			v := dark[(x/TileWidth+y/TileHeight)%2]
			img.Pix[i+0] = v
			img.Pix[i+1] = v
			img.Pix[i+2] = v
			img.Pix[i+3] = 0xff
			i += 4
		}
	}

	return img
}
