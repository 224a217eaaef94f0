package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/osdicons/osdfont"
	"github.com/osdicons/osdfont/icons"
	"github.com/osdicons/osdfont/layout"
	"github.com/osdicons/osdfont/utils"
)

const HelpBanner = `
┌─┐┌─┐┌┬┐┌─┐┌─┐┌┐┌┌┬┐
│ │└─┐ ││├┤ │ ││││ │
└─┘└─┘─┴┘└  └─┘┘└┘ ┴

OSD icon font template generator.
    Version: %s

`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	destination = flag.String("out", "template.png", "Template destination (.png, .bmp or - for stdout)")
	previewDst  = flag.String("preview", "preview.png", "Preview destination, empty to skip")
	layoutPath  = flag.String("layout", "", "Icon layout YAML file (default: built-in layout)")
	fontPath    = flag.String("font", "", "TrueType/OpenType font file or URL (default: Go Bold)")
	basePath    = flag.String("base", "", "Base template image the tiles are pasted onto")
	overlayPath = flag.String("overlay", "", "Preview backdrop image")
	logoPath    = flag.String("logo", "", "Logo image file or URL")
	logoText    = flag.String("logo-text", "MSP-OSD", "Text drawn in the logo area when no logo image is set")
	radius      = flag.Float64("radius", osdfont.DefaultOutlineRadius, "Outline radius, 0 disables the outline")
	opacity     = flag.Float64("opacity", osdfont.DefaultOutlineOpacity, "Outline opacity, 0 disables the outline")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of tiles rendered concurrently")
	listIcons   = flag.Bool("list", false, "List the available icon names and exit")
	verbose     = flag.Bool("v", false, "Log every rendered tile")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *listIcons {
		for _, name := range icons.Names() {
			fmt.Println(name)
		}
		return
	}

	// Remove the downloaded files on every exit path.
	var cleanup []func()
	defer func() {
		for _, fn := range cleanup {
			fn()
		}
	}()
	fail := func(format string, args ...any) {
		for _, fn := range cleanup {
			fn()
		}
		log.Fatalf("%s %s",
			utils.DecorateText("⚡ OSDFONT", utils.StatusMessage),
			utils.DecorateText(fmt.Sprintf(format, args...), utils.ErrorMessage),
		)
	}

	gen, err := osdfont.NewGenerator()
	if err != nil {
		fail("Failed to initialize the generator: %v", err)
	}
	gen.LogoText = *logoText
	if *radius < 0 || *opacity < 0 {
		fail("The outline radius and opacity cannot be negative")
	}
	// A zero radius or opacity turns the outline off.
	gen.OutlineRadius = *radius
	gen.OutlineOpacity = *opacity
	gen.NoOutline = *radius == 0 || *opacity == 0
	gen.Workers = *workers
	if *verbose {
		gen.Logger = log.New(os.Stderr, "", 0)
	}

	if *layoutPath != "" {
		l, err := layout.Load(*layoutPath)
		if err != nil {
			fail("Failed to load the layout: %v", err)
		}
		if gen.Glyphs, err = osdfont.GlyphsFromLayout(l); err != nil {
			fail("Failed to load the layout: %v", err)
		}
	}

	if *fontPath != "" {
		path, remove, err := resolve(*fontPath)
		if err != nil {
			fail("Failed to load the font: %v", err)
		}
		cleanup = append(cleanup, remove)

		ctype, err := utils.DetectContentType(path)
		if err != nil {
			fail("Failed to load the font: %v", err)
		}
		if !utils.IsFont(ctype) {
			fail("Failed to load the font: %s is not a font file (%s)", *fontPath, ctype)
		}
		if gen.Font, err = os.ReadFile(path); err != nil {
			fail("Failed to load the font: %v", err)
		}
	}

	if gen.Base, err = loadImage(*basePath, &cleanup); err != nil {
		fail("Failed to load the base template: %v", err)
	}
	if gen.Overlay, err = loadImage(*overlayPath, &cleanup); err != nil {
		fail("Failed to load the preview overlay: %v", err)
	}
	if gen.Logo, err = loadImage(*logoPath, &cleanup); err != nil {
		fail("Failed to load the logo: %v", err)
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ OSDFONT", utils.StatusMessage),
		utils.DecorateText("is rendering the font template...", utils.DefaultMessage))
	spinner := utils.NewSpinner(spinnerText, time.Millisecond*200, true)
	spinner.StopMsg = fmt.Sprintf("%s %s\n",
		utils.DecorateText("⚡ OSDFONT", utils.StatusMessage),
		utils.DecorateText("is rendering the font template... ✔", utils.DefaultMessage))
	if *verbose {
		// The spinner would garble the per tile log lines.
		spinner = nil
	}

	// Capture CTRL-C signal, the spinner restores the cursor visibility when stopped.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	now := time.Now()
	op := &osdfont.Ops{
		Dst:      *destination,
		Preview:  *previewDst,
		PipeName: pipeName,
	}
	if err := gen.Execute(ctx, op, spinner); err != nil {
		fail("Error generating the font template: %v", err)
	}

	printStatus(op)
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// resolve returns a local path for src, downloading it first when it is a URL.
// The returned function removes the downloaded copy.
func resolve(src string) (string, func(), error) {
	if !utils.IsValidUrl(src) {
		return src, func() {}, nil
	}
	f, err := utils.DownloadFile(src)
	if err != nil {
		return "", nil, err
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", nil, err
	}
	return name, func() { os.Remove(name) }, nil
}

// loadImage decodes the image at src, which can be a local path or a URL.
// An empty src yields a nil image.
func loadImage(src string, cleanup *[]func()) (image.Image, error) {
	if src == "" {
		return nil, nil
	}
	path, remove, err := resolve(src)
	if err != nil {
		return nil, err
	}
	*cleanup = append(*cleanup, remove)

	return osdfont.DecodeImage(path)
}

// printStatus displays the location of the generated images.
func printStatus(op *osdfont.Ops) {
	if op.Dst != pipeName {
		fmt.Fprintf(os.Stderr, "\nThe font template has been saved as: %s\n",
			utils.DecorateText(filepath.Base(op.Dst), utils.SuccessMessage))
	}
	if op.Preview != "" {
		fmt.Fprintf(os.Stderr, "The preview has been saved as: %s\n",
			utils.DecorateText(filepath.Base(op.Preview), utils.SuccessMessage))
	}
}
