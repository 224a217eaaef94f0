package osdfont

import "image"

// Tile geometry of an OSD font template. Tiles are three times the size of
// the 12x18 analog OSD character cell.
const (
	TileWidth   = 12 * 3
	TileHeight  = 18 * 3
	TilesPerRow = 16
	TileRows    = 16
	TileCount   = TilesPerRow * TileRows

	TemplateWidth  = TileWidth * TilesPerRow
	TemplateHeight = TileHeight * TileRows
)

// Rows of the template holding the generated sheets.
const (
	charRow    = 2
	arrowRow   = 6
	horizonRow = 8
	logoRow    = 10
)

// Charset lists the characters drawn with the text font, from space to underscore.
// They start at tile 32 so that the tile index equals the ASCII code.
var Charset = func() []rune {
	chars := make([]rune, 0, '_'-' '+1)
	for r := ' '; r <= '_'; r++ {
		chars = append(chars, r)
	}
	return chars
}()

// TileOrigin returns the top left corner of the tile at index i.
func TileOrigin(i int) image.Point {
	return image.Pt(i%TilesPerRow*TileWidth, i/TilesPerRow*TileHeight)
}

// TileRect returns the bounds of the tile at index i.
func TileRect(i int) image.Rectangle {
	p := TileOrigin(i)
	return image.Rect(p.X, p.Y, p.X+TileWidth, p.Y+TileHeight)
}

func newTile() *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, TileWidth, TileHeight))
}
