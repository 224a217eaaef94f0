package osdfont

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/osdicons/osdfont/shape"
)

const (
	arrowSteps = TilesPerRow
	arrowAngle = 360.0 / arrowSteps

	horizonTiles     = 9
	horizonLineWidth = 8

	// The logo spans 24x4 tiles and is laid out over the template rows
	// starting at logoRow, 16 tiles per row.
	logoTilesWide = 24
	logoTilesHigh = 4
	logoFill      = 0.8
)

// LogoSize returns the pixel size of the logo image before it is cut into tiles.
func LogoSize() (w, h int) {
	return logoTilesWide * TileWidth, logoTilesHigh * TileHeight
}

// CharSheet renders the Charset, TilesPerRow characters per row.
func (r *Renderer) CharSheet() (*image.NRGBA, error) {
	rows := (len(Charset) + TilesPerRow - 1) / TilesPerRow
	img := image.NewNRGBA(image.Rect(0, 0, TileWidth*TilesPerRow, TileHeight*rows))

	face, err := r.font.face(math.Floor(TileHeight * 0.85))
	if err != nil {
		return nil, err
	}
	defer face.Close()

	for i, c := range Charset {
		p := TileOrigin(i)
		x := float64(p.X + TileWidth/2)
		y := float64(p.Y) + TileHeight*0.8
		drawText(img, face, string(c), x, y, anchorMiddleBaseline)
	}

	return r.outline(img), nil
}

// ArrowSheet renders one row of direction arrows, each rotated
// counter-clockwise by a sixteenth of a turn more than the previous one.
func (r *Renderer) ArrowSheet() (*image.NRGBA, error) {
	arrow, err := Icon{Name: "arrow-down"}.Render(r)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, TileWidth*arrowSteps, TileHeight))
	for i := 0; i < arrowSteps; i++ {
		rotated := imaging.Rotate(arrow, float64(i)*arrowAngle, color.Transparent)
		tile := imaging.PasteCenter(newTile(), rotated)
		draw.Draw(img, tile.Bounds().Add(TileOrigin(i)), tile, image.Point{}, draw.Src)
	}

	return img, nil
}

// HorizonSheet renders the artificial horizon tiles, a thick line
// which moves further down in every following tile.
func (r *Renderer) HorizonSheet() (*image.NRGBA, error) {
	img := image.NewNRGBA(image.Rect(0, 0, TileWidth*horizonTiles, TileHeight))

	for i := 0; i < horizonTiles; i++ {
		tile := newTile()
		y := float32(horizonLineWidth/2 + (TileHeight-horizonLineWidth/2)*(float64(i)/horizonTiles))
		shape.Line(tile, 0, y, TileWidth, y, horizonLineWidth, white)

		tile = r.outline(tile)
		draw.Draw(img, tile.Bounds().Add(TileOrigin(i)), tile, image.Point{}, draw.Src)
	}

	return img, nil
}

// LogoSheet fits logo into the logo area, outlines it and cuts it into
// tiles laid out TilesPerRow per row. When logo is nil, text is written
// in the middle of the area instead.
func (r *Renderer) LogoSheet(logo image.Image, text string) (*image.NRGBA, error) {
	w, h := LogoSize()
	maxW, maxH := int(float64(w)*logoFill), int(float64(h)*logoFill)

	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	if logo != nil {
		fitted := imaging.Fit(logo, maxW, maxH, imaging.Lanczos)
		canvas = imaging.PasteCenter(canvas, fitted)
	} else if text != "" {
		if err := r.drawLogoText(canvas, text, maxW, maxH); err != nil {
			return nil, err
		}
	}
	canvas = r.outline(canvas)

	count := logoTilesWide * logoTilesHigh
	rows := count / TilesPerRow
	img := image.NewNRGBA(image.Rect(0, 0, TileWidth*TilesPerRow, TileHeight*rows))

	for y := 0; y < logoTilesHigh; y++ {
		for x := 0; x < logoTilesWide; x++ {
			src := image.Pt(x*TileWidth, y*TileHeight)
			dst := TileRect(y*logoTilesWide + x)
			draw.Draw(img, dst, canvas, src, draw.Src)
		}
	}

	return img, nil
}

// drawLogoText writes text centred in canvas, shrinking the font until it fits into maxW x maxH.
func (r *Renderer) drawLogoText(canvas *image.NRGBA, text string, maxW, maxH int) error {
	size := float64(maxH) * 0.85

	face, err := r.font.face(size)
	if err != nil {
		return err
	}
	if adv, _ := measure(face, text); adv > float64(maxW) {
		face.Close()
		size = math.Floor(size * float64(maxW) / adv)
		if face, err = r.font.face(size); err != nil {
			return err
		}
	}
	defer face.Close()

	m := face.Metrics()
	ascent, descent := fixedToFloat(m.Ascent), fixedToFloat(m.Descent)
	b := canvas.Bounds()

	// Centre the line box vertically.
	y := float64(b.Dy())/2 + (ascent-descent)/2
	drawText(canvas, face, text, float64(b.Dx())/2, y, anchorMiddleBaseline)

	return nil
}
