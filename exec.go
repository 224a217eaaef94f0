package osdfont

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/osdicons/osdfont/utils"
	"golang.org/x/term"
)

// Ops describes where the generated images are written.
type Ops struct {
	// Dst is the template destination. When equal to PipeName the template is written to stdout as PNG.
	Dst string
	// Preview is the preview destination. Empty skips the preview.
	Preview  string
	PipeName string
}

// Execute generates the template and writes the requested outputs.
// The spinner, when set, runs for the duration of the generation.
func (g *Generator) Execute(ctx context.Context, op *Ops, spinner *utils.Spinner) error {
	if err := op.validate(); err != nil {
		return err
	}

	if spinner != nil {
		spinner.Start()
		defer spinner.Stop()
	}

	res, err := g.Generate(ctx)
	if err != nil {
		return err
	}

	if err := op.write(op.Dst, res.Template); err != nil {
		return fmt.Errorf("could not write the template: %w", err)
	}
	if op.Preview != "" {
		if err := op.write(op.Preview, res.Preview); err != nil {
			return fmt.Errorf("could not write the preview: %w", err)
		}
	}
	return nil
}

// validate checks the destinations before doing any work.
func (op *Ops) validate() error {
	if op.Dst == "" {
		return errors.New("missing template destination")
	}
	if op.Preview == op.PipeName && op.PipeName != "" {
		return errors.New("the preview cannot be written to stdout")
	}
	if op.Dst != op.PipeName && !IsSupportedExt(extOf(op.Dst)) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, extOf(op.Dst))
	}
	if op.Preview != "" && !IsSupportedExt(extOf(op.Preview)) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, extOf(op.Preview))
	}
	return nil
}

// write stores img at dst, which is either a file path or the pipe name.
func (op *Ops) write(dst string, img image.Image) error {
	if dst != op.PipeName {
		return EncodeFile(dst, img)
	}
	// Check if the destination is a pipe name or a regular file.
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("`-` should be used with a pipe for stdout")
	}
	return Encode(os.Stdout, img, ".png")
}
