/*
Package osdfont generates the glyph template of an on-screen-display font for
FPV goggles, the image from which the OSD font files of msp-osd are packed.

The template is a 16x16 grid of 36x54 pixel tiles. The generator fills it with
the printable characters, the direction arrows, the artificial horizon, a logo
and a table of icons (signal, battery, units of measure, stick overlay and so
on), each drawn in white with a soft dark outline so it stays readable over
the video feed. Next to the template it produces a preview where the tiles are
laid over a backdrop.

The package provides a command line interface, supporting various flags to
customise the font, the icon table and the outputs. To check the supported
commands type:

	$ osdfont --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"context"
		"log"

		"github.com/osdicons/osdfont"
	)

	func main() {
		g, err := osdfont.NewGenerator()
		if err != nil {
			log.Fatal(err)
		}
		res, err := g.Generate(context.Background())
		if err != nil {
			log.Fatalf("Error generating the template: %v", err)
		}
		if err := osdfont.EncodeFile("template.png", res.Template); err != nil {
			log.Fatal(err)
		}
	}
*/
package osdfont
