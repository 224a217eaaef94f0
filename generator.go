package osdfont

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"log"
	"runtime"
	"sync"

	"github.com/osdicons/osdfont/imop"
	"github.com/osdicons/osdfont/utils"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// Generator options
type Generator struct {
	// Font is the TrueType or OpenType font used for the characters and labels.
	// Empty means the embedded Go Bold font.
	Font []byte
	// Base is the template the generated tiles are pasted onto.
	// Nil means a transparent canvas.
	Base image.Image
	// Overlay is the backdrop of the preview image.
	// Nil means a generated checkerboard.
	Overlay image.Image
	// Logo is fitted into the logo area. When nil LogoText is written instead.
	Logo     image.Image
	LogoText string
	// Glyphs are pasted last, in order, so they replace the tiles of the generated sheets.
	Glyphs []Glyph

	// OutlineRadius and OutlineOpacity tune the soft outline of every tile.
	// Zero selects DefaultOutlineRadius and DefaultOutlineOpacity.
	OutlineRadius  float64
	OutlineOpacity float64
	// NoOutline renders the tiles without the outline, whatever the radius and opacity.
	NoOutline bool
	// Workers is the number of tiles rendered concurrently.
	// Zero selects the number of CPUs. It is capped at 20.
	Workers int

	// Logger receives a line per rendered tile. Nil discards the messages.
	Logger *log.Logger
}

// Result holds the generated images.
type Result struct {
	Template *image.NRGBA
	Preview  *image.NRGBA
}

// job renders one part of the template which is pasted at origin.
type job struct {
	name   string
	origin image.Point
	render func(r *Renderer) (*image.NRGBA, error)
}

// result holds the outcome of a job.
type result struct {
	idx int
	img *image.NRGBA
	err error
}

// NewGenerator returns a generator with the default settings and glyph table.
func NewGenerator() (*Generator, error) {
	glyphs, err := DefaultGlyphs()
	if err != nil {
		return nil, err
	}
	return &Generator{
		Glyphs:         glyphs,
		OutlineRadius:  DefaultOutlineRadius,
		OutlineOpacity: DefaultOutlineOpacity,
		Workers:        runtime.NumCPU(),
	}, nil
}

// Generate renders the font template and its preview.
// The first failing tile aborts the generation and its error is returned.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	r, err := NewRenderer(g.Font)
	if err != nil {
		return nil, err
	}
	if g.OutlineRadius < 0 || g.OutlineOpacity < 0 {
		return nil, fmt.Errorf("negative outline radius or opacity: %v, %v", g.OutlineRadius, g.OutlineOpacity)
	}
	if g.OutlineRadius > 0 {
		r.OutlineRadius = g.OutlineRadius
	}
	if g.OutlineOpacity > 0 {
		r.OutlineOpacity = g.OutlineOpacity
	}
	if g.NoOutline {
		r.OutlineOpacity = 0
	}

	jobs, err := g.jobs()
	if err != nil {
		return nil, err
	}
	imgs, err := g.run(ctx, r, jobs)
	if err != nil {
		return nil, err
	}

	tmpl := image.NewNRGBA(image.Rect(0, 0, TemplateWidth, TemplateHeight))
	if g.Base != nil {
		draw.Draw(tmpl, tmpl.Bounds(), g.Base, g.Base.Bounds().Min, draw.Src)
	}
	// Pasting replaces the pixels of the covered tiles, including their transparency.
	for i, j := range jobs {
		draw.Draw(tmpl, imgs[i].Bounds().Add(j.origin), imgs[i], image.Point{}, draw.Src)
	}

	return &Result{
		Template: tmpl,
		Preview:  g.preview(tmpl),
	}, nil
}

// jobs lists the sheets followed by the glyphs, in painting order.
func (g *Generator) jobs() ([]job, error) {
	jobs := []job{
		{
			name:   "characters",
			origin: image.Pt(0, charRow*TileHeight),
			render: (*Renderer).CharSheet,
		},
		{
			name:   "arrows",
			origin: image.Pt(0, arrowRow*TileHeight),
			render: (*Renderer).ArrowSheet,
		},
		{
			name:   "horizon",
			origin: image.Pt(0, horizonRow*TileHeight),
			render: (*Renderer).HorizonSheet,
		},
		{
			name:   "logo",
			origin: image.Pt(0, logoRow*TileHeight),
			render: func(r *Renderer) (*image.NRGBA, error) {
				return r.LogoSheet(g.Logo, g.LogoText)
			},
		},
	}

	for _, gl := range g.Glyphs {
		idx := gl.Index()
		if idx < 0 || idx >= TileCount {
			return nil, fmt.Errorf("%w: tile index %d out of range", ErrInvalidGlyph, idx)
		}
		jobs = append(jobs, job{
			name:   fmt.Sprintf("%T@%d", gl, idx),
			origin: TileOrigin(idx),
			render: gl.Render,
		})
	}

	return jobs, nil
}

// run renders the jobs concurrently and returns the images in job order.
func (g *Generator) run(ctx context.Context, r *Renderer, jobs []job) ([]*image.NRGBA, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := workerCount(g.Workers)

	logger := g.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	idxs := make(chan int)
	results := make(chan result)

	go func() {
		defer close(idxs)
		for i := range jobs {
			select {
			case <-ctx.Done():
				return
			case idxs <- i:
			}
		}
	}()

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range idxs {
				img, err := jobs[i].render(r)
				if err != nil {
					err = fmt.Errorf("%s: %w", jobs[i].name, err)
				}
				select {
				case <-ctx.Done():
					return
				case results <- result{idx: i, img: img, err: err}:
				}
			}
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(results)
		wg.Wait()
	}()

	imgs := make([]*image.NRGBA, len(jobs))
	var firstErr error
	for res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
				cancel()
			}
			continue
		}
		imgs[res.idx] = res.img
		logger.Printf("rendered %s", jobs[res.idx].name)
	}

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return imgs, nil
}

// workerCount limits the concurrently running workers to maxWorkers.
// A non-positive n selects the number of CPUs.
func workerCount(n int) int {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return utils.Min(n, maxWorkers)
}

// preview lays the template over the dimmed overlay.
func (g *Generator) preview(tmpl *image.NRGBA) *image.NRGBA {
	w, h := tmpl.Bounds().Dx(), tmpl.Bounds().Dy()

	overlay := g.Overlay
	if overlay == nil {
		overlay = checkerboard(w, h)
	}
	return imop.Over(tmpl, dimmed(overlay, w, h))
}
