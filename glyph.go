package osdfont

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/osdicons/osdfont/icons"
	"github.com/osdicons/osdfont/shape"
)

// ErrInvalidGlyph is returned when a glyph is configured with an unsupported option.
var ErrInvalidGlyph = errors.New("invalid glyph")

var white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Glyph is a single tile of the font template.
type Glyph interface {
	// Index returns the position of the glyph inside the template.
	Index() int
	// Render draws the glyph into a new TileWidth x TileHeight image.
	Render(r *Renderer) (*image.NRGBA, error)
}

// Tile is the template position of a glyph. It is embedded by every glyph type.
type Tile int

// Index implements the Glyph interface.
func (t Tile) Index() int { return int(t) }

// Renderer holds the resources shared by the glyphs while rendering.
type Renderer struct {
	font           *textFont
	OutlineRadius  float64
	OutlineOpacity float64
}

// NewRenderer creates a renderer using the given TrueType or OpenType font.
// An empty font selects the embedded Go Bold font.
func NewRenderer(ttf []byte) (*Renderer, error) {
	f, err := parseFont(ttf)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		font:           f,
		OutlineRadius:  DefaultOutlineRadius,
		OutlineOpacity: DefaultOutlineOpacity,
	}, nil
}

func (r *Renderer) outline(img *image.NRGBA) *image.NRGBA {
	if r.OutlineRadius <= 0 || r.OutlineOpacity <= 0 {
		return img
	}
	return Outline(img, r.OutlineRadius, r.OutlineOpacity)
}

// Empty is a fully transparent tile.
type Empty struct {
	Tile
}

func (g Empty) Render(*Renderer) (*image.NRGBA, error) {
	return newTile(), nil
}

// Icon places a vector icon from the icon registry in the middle of the tile.
type Icon struct {
	Tile
	Name string
	// Scale is the icon size relative to the tile width. Zero means 1.
	Scale float64
	// NoOutline disables the soft outline.
	NoOutline bool
	// Offsets of the icon from the centred position, in pixels.
	OffsetX, OffsetY float64
}

func (g Icon) Render(r *Renderer) (*image.NRGBA, error) {
	data, err := icons.Lookup(g.Name)
	if err != nil {
		return nil, err
	}
	size := int(TileWidth * scaleOr(g.Scale, 1))
	icon, err := icons.Rasterize(data, size, size)
	if err != nil {
		return nil, fmt.Errorf("icon %q: %w", g.Name, err)
	}

	x := int(float64(TileWidth-size)/2 + g.OffsetX)
	y := int(float64(TileHeight-size)/2 + g.OffsetY)

	img := newTile()
	draw.Draw(img, icon.Bounds().Add(image.Pt(x, y)), icon, image.Point{}, draw.Src)

	if g.NoOutline {
		return img, nil
	}
	return r.outline(img), nil
}

// Text draws a short label, e.g. a unit of measure.
type Text struct {
	Tile
	Text string
	// Center places the text in the horizontal middle of the tile instead of the left side.
	Center bool
	// Scale is the font size relative to the tile height. Zero means 0.5.
	Scale float64
}

func (g Text) Render(r *Renderer) (*image.NRGBA, error) {
	face, err := r.font.face(math.Floor(TileHeight * scaleOr(g.Scale, 0.5)))
	if err != nil {
		return nil, err
	}
	defer face.Close()

	a, x := anchorLeftBaseline, TileWidth*0.1
	if g.Center {
		a, x = anchorMiddleBaseline, TileWidth/2
	}
	// Sit the lowest ink of the text at 80% of the tile height.
	_, descent := measure(face, g.Text)
	y := TileHeight*0.8 - descent

	img := newTile()
	drawText(img, face, g.Text, x, y, a)

	return r.outline(img), nil
}

// Stick is the dot of the stick position overlay.
type Stick struct {
	Tile
	// Position is one of "high", "middle" or "low".
	Position string
}

func (g Stick) Render(r *Renderer) (*image.NRGBA, error) {
	var cy float32
	switch g.Position {
	case "high":
		cy = TileHeight * 0.2
	case "middle":
		cy = TileHeight * 0.5
	case "low":
		cy = TileHeight * 0.8
	default:
		return nil, fmt.Errorf("%w: stick position %q", ErrInvalidGlyph, g.Position)
	}
	const cx = TileWidth / 2

	img := newTile()
	shape.Ellipse(img, cx-4, cy-4, cx+4, cy+4, white)

	return r.outline(img), nil
}

// StickCenter is the cross marking the stick centre.
type StickCenter struct {
	Tile
}

func (g StickCenter) Render(r *Renderer) (*image.NRGBA, error) {
	img := newTile()
	verticalLine(img)
	horizontalLine(img)
	return r.outline(img), nil
}

// StickVertical is the vertical axis of the stick overlay.
type StickVertical struct {
	Tile
}

func (g StickVertical) Render(r *Renderer) (*image.NRGBA, error) {
	img := newTile()
	verticalLine(img)
	return r.outline(img), nil
}

// StickHorizontal is the horizontal axis of the stick overlay.
type StickHorizontal struct {
	Tile
}

func (g StickHorizontal) Render(r *Renderer) (*image.NRGBA, error) {
	img := newTile()
	horizontalLine(img)
	return r.outline(img), nil
}

func verticalLine(img *image.NRGBA) {
	shape.Line(img, TileWidth/2, 0, TileWidth/2, TileHeight, 3, white)
}

func horizontalLine(img *image.NRGBA) {
	shape.Line(img, 0, TileHeight/2, TileWidth, TileHeight/2, 3, white)
}

// Heading is the compass tick. A divided tick only reaches the middle of the tile.
type Heading struct {
	Tile
	Divided bool
}

func (g Heading) Render(r *Renderer) (*image.NRGBA, error) {
	bottom := float32(TileHeight * 0.8)
	if g.Divided {
		bottom = TileHeight * 0.5
	}

	img := newTile()
	shape.RoundedRect(img, TileWidth/2-1.5, TileHeight*0.2, TileWidth/2+1.5, bottom, 1, white)

	return r.outline(img), nil
}

// HeadingDecoration is the marker drawn in the middle of the compass bar.
type HeadingDecoration struct {
	Tile
}

func (g HeadingDecoration) Render(r *Renderer) (*image.NRGBA, error) {
	const halfWidth = 1.5

	img := newTile()
	shape.RoundedRect(img, TileWidth*0.45, -10, TileWidth*0.55, TileHeight*0.1, 1, white)
	shape.RoundedRect(img, TileWidth*0.33, TileHeight/2-halfWidth, TileWidth*0.66, TileHeight/2+halfWidth, 1, white)
	shape.RoundedRect(img, TileWidth*0.45, TileHeight*0.9, TileWidth*0.55, TileHeight+10, 1, white)

	return r.outline(img), nil
}

// BarCap closes a progress bar on the given side.
type BarCap struct {
	Tile
	// Side is either "left" or "right".
	Side string
}

func (g BarCap) Render(r *Renderer) (*image.NRGBA, error) {
	var x float32
	switch g.Side {
	case "left":
		x = TileWidth - 1.5
	case "right":
		x = 1.5
	default:
		return nil, fmt.Errorf("%w: bar cap side %q", ErrInvalidGlyph, g.Side)
	}

	img := newTile()
	shape.Line(img, x, TileHeight*0.25-1.5, x, TileHeight*0.75+1, 3, white)

	return r.outline(img), nil
}

// Bar is a progress bar segment.
type Bar struct {
	Tile
	// Section is one of "full", "half_full", "empty" or "end".
	Section string
}

func (g Bar) Render(r *Renderer) (*image.NRGBA, error) {
	const (
		top    = TileHeight * 0.25
		bottom = TileHeight * 0.75
	)

	img := newTile()
	switch g.Section {
	case "full":
		shape.Rect(img, -10, top, TileWidth+10, bottom, white)
	case "half_full":
		shape.Rect(img, -10, top, TileWidth/2, bottom, white)
	case "empty":
	case "end":
		shape.Rect(img, -10, top, 2, bottom, white)
	default:
		return nil, fmt.Errorf("%w: bar section %q", ErrInvalidGlyph, g.Section)
	}

	shape.Line(img, -10, top, TileWidth+10, top, 3, white)
	shape.Line(img, -10, bottom, TileWidth+10, bottom, 3, white)

	return r.outline(img), nil
}

func scaleOr(scale, def float64) float64 {
	if scale == 0 {
		return def
	}
	return scale
}
