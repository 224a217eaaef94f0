package osdfont

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"log"
	"runtime"
	"strings"
	"testing"

	"github.com/osdicons/osdfont/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.NRGBA{R: 255, A: 255}

// solidGlyph fills its tile with a single color.
type solidGlyph struct {
	Tile
	c color.NRGBA
}

func (g solidGlyph) Render(*Renderer) (*image.NRGBA, error) {
	img := newTile()
	draw.Draw(img, img.Bounds(), image.NewUniform(g.c), image.Point{}, draw.Src)
	return img, nil
}

var errBroken = errors.New("broken glyph")

type brokenGlyph struct {
	Tile
}

func (brokenGlyph) Render(*Renderer) (*image.NRGBA, error) {
	return nil, errBroken
}

func TestGenerator_Generate(t *testing.T) {
	gen, err := NewGenerator()
	require.NoError(t, err)
	gen.Workers = 4

	res, err := gen.Generate(context.Background())
	require.NoError(t, err)

	tmpl := image.Rect(0, 0, TemplateWidth, TemplateHeight)
	assert.Equal(t, tmpl, res.Template.Bounds())
	assert.Equal(t, tmpl, res.Preview.Bounds())

	// The first rows hold only the tiles placed by the layout, the top left one is empty.
	assert.Zero(t, opaquePixels(imgToNRGBA(res.Template.SubImage(TileRect(0)))))
	assert.NotZero(t, opaquePixels(imgToNRGBA(res.Template.SubImage(TileRect('A')))))

	// The preview is opaque everywhere.
	for i := 3; i < len(res.Preview.Pix); i += 4 {
		if res.Preview.Pix[i] != 0xff {
			t.Fatalf("preview pixel %d is not opaque", i/4)
		}
	}
}

func TestGenerator_GlyphsReplaceSheets(t *testing.T) {
	gen := &Generator{
		Glyphs: []Glyph{
			solidGlyph{Tile: 'A', c: red},
			solidGlyph{Tile: 0, c: red},
			Empty{Tile: 'B'},
		},
		Workers: 2,
	}

	res, err := gen.Generate(context.Background())
	require.NoError(t, err)

	a := TileRect('A')
	assert.Equal(t, red, res.Template.NRGBAAt(a.Min.X, a.Min.Y))
	assert.Equal(t, red, res.Template.NRGBAAt(a.Max.X-1, a.Max.Y-1))
	assert.Equal(t, red, res.Template.NRGBAAt(0, 0))
	assert.Zero(t, opaquePixels(imgToNRGBA(res.Template.SubImage(TileRect('B')))))
	assert.NotZero(t, opaquePixels(imgToNRGBA(res.Template.SubImage(TileRect('C')))))
}

func TestGenerator_LaterGlyphWins(t *testing.T) {
	blue := color.NRGBA{B: 255, A: 255}
	gen := &Generator{
		Glyphs: []Glyph{
			solidGlyph{Tile: 200, c: red},
			solidGlyph{Tile: 200, c: blue},
		},
	}

	res, err := gen.Generate(context.Background())
	require.NoError(t, err)

	p := TileOrigin(200)
	assert.Equal(t, blue, res.Template.NRGBAAt(p.X+5, p.Y+5))
}

func TestGenerator_Base(t *testing.T) {
	base := image.NewNRGBA(image.Rect(0, 0, TemplateWidth, TemplateHeight))
	draw.Draw(base, base.Bounds(), image.NewUniform(red), image.Point{}, draw.Src)

	gen := &Generator{Base: base}
	res, err := gen.Generate(context.Background())
	require.NoError(t, err)

	// Untouched tiles keep the base, generated sheets replace it.
	assert.Equal(t, red, res.Template.NRGBAAt(5, 5))
	assert.Equal(t, color.NRGBA{}, res.Template.NRGBAAt(5, charRow*TileHeight+5))
}

func TestGenerator_Overlay(t *testing.T) {
	overlay := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	draw.Draw(overlay, overlay.Bounds(), image.NewUniform(red), image.Point{}, draw.Src)

	gen := &Generator{Overlay: overlay}
	res, err := gen.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, color.NRGBA{R: 191, G: 128, B: 128, A: 255}, res.Preview.NRGBAAt(1, 1))
	assert.Equal(t, color.NRGBA{R: 128, G: 128, B: 128, A: 255}, res.Preview.NRGBAAt(20, 20))
}

func TestGenerator_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		glyphs []Glyph
		want   error
	}{
		{name: "failing glyph", glyphs: []Glyph{Empty{Tile: 1}, brokenGlyph{Tile: 2}}, want: errBroken},
		{name: "negative index", glyphs: []Glyph{Empty{Tile: -1}}, want: ErrInvalidGlyph},
		{name: "index out of range", glyphs: []Glyph{Empty{Tile: TileCount}}, want: ErrInvalidGlyph},
		{name: "invalid option", glyphs: []Glyph{Bar{Tile: 3, Section: "nope"}}, want: ErrInvalidGlyph},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gen := &Generator{Glyphs: tc.glyphs, Workers: 3}
			res, err := gen.Generate(context.Background())

			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, res)
		})
	}
}

func TestGenerator_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen, err := NewGenerator()
	require.NoError(t, err)

	res, err := gen.Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}

func TestGenerator_InvalidFont(t *testing.T) {
	gen := &Generator{Font: []byte("garbage")}
	_, err := gen.Generate(context.Background())
	assert.Error(t, err)
}

func TestGenerator_Logger(t *testing.T) {
	var buf bytes.Buffer
	gen := &Generator{
		Glyphs: []Glyph{Empty{Tile: 7}},
		Logger: log.New(&buf, "", 0),
	}

	_, err := gen.Generate(context.Background())
	require.NoError(t, err)

	out := buf.String()
	for _, name := range []string{"characters", "arrows", "horizon", "logo", "osdfont.Empty@7"} {
		assert.Contains(t, out, "rendered "+name)
	}
	assert.Equal(t, 5, strings.Count(out, "\n"))
}

func TestGenerator_NoOutline(t *testing.T) {
	p := TileOrigin(200).Add(image.Pt(24, TileHeight/2))

	testCases := []struct {
		name    string
		gen     *Generator
		outline bool
	}{
		{name: "default", gen: &Generator{}, outline: true},
		{name: "custom opacity", gen: &Generator{OutlineOpacity: 0.8}, outline: true},
		{name: "disabled", gen: &Generator{OutlineOpacity: 0.8, NoOutline: true}, outline: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.gen.Glyphs = []Glyph{Stick{Tile: 200, Position: "middle"}}
			res, err := tc.gen.Generate(context.Background())
			require.NoError(t, err)

			// The pixel is next to the dot, only the outline can cover it.
			c := res.Template.NRGBAAt(p.X, p.Y)
			if tc.outline {
				assert.NotZero(t, c.A)
			} else {
				assert.Equal(t, color.NRGBA{}, c)
			}
		})
	}
}

func TestGenerator_NegativeOutline(t *testing.T) {
	_, err := (&Generator{OutlineOpacity: -1}).Generate(context.Background())
	assert.Error(t, err)

	_, err = (&Generator{OutlineRadius: -1}).Generate(context.Background())
	assert.Error(t, err)
}

func TestGenerator_WorkerCount(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(1, workerCount(1))
	assert.Equal(maxWorkers, workerCount(maxWorkers))
	assert.Equal(maxWorkers, workerCount(1000))
	assert.Equal(utils.Min(runtime.NumCPU(), maxWorkers), workerCount(0))
	assert.Equal(utils.Min(runtime.NumCPU(), maxWorkers), workerCount(-3))
}
