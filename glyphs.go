package osdfont

import (
	"fmt"

	"github.com/osdicons/osdfont/layout"
)

// DefaultGlyphs returns the glyphs of the built-in layout.
func DefaultGlyphs() ([]Glyph, error) {
	return GlyphsFromLayout(layout.Default())
}

// GlyphsFromLayout converts the layout entries into glyphs, keeping their order.
func GlyphsFromLayout(l *layout.Layout) ([]Glyph, error) {
	glyphs := make([]Glyph, 0, len(l.Entries))

	for _, e := range l.Entries {
		t := Tile(e.Index)

		var g Glyph
		switch e.Kind {
		case layout.KindEmpty:
			g = Empty{Tile: t}
		case layout.KindIcon:
			g = Icon{
				Tile:      t,
				Name:      e.Name,
				Scale:     e.Scale,
				NoOutline: !e.Outline,
				OffsetX:   e.OffsetX * TileWidth,
				OffsetY:   e.OffsetY * TileHeight,
			}
		case layout.KindText:
			g = Text{Tile: t, Text: e.Text, Center: e.Center, Scale: e.Scale}
		case layout.KindStick:
			g = Stick{Tile: t, Position: e.Position}
		case layout.KindStickCenter:
			g = StickCenter{Tile: t}
		case layout.KindStickVertical:
			g = StickVertical{Tile: t}
		case layout.KindStickHorizontal:
			g = StickHorizontal{Tile: t}
		case layout.KindHeading:
			g = Heading{Tile: t, Divided: e.Divided}
		case layout.KindHeadingDecoration:
			g = HeadingDecoration{Tile: t}
		case layout.KindBarCap:
			g = BarCap{Tile: t, Side: e.Side}
		case layout.KindBar:
			g = Bar{Tile: t, Section: e.Section}
		default:
			return nil, fmt.Errorf("%w: unknown kind %q at index %d", ErrInvalidGlyph, e.Kind, e.Index)
		}
		glyphs = append(glyphs, g)
	}

	return glyphs, nil
}
