package source

import (
	"context"
	"fmt"

	"github.com/jkelaty/panorama-stitching/internal/log"
)

// Picker asks the user to choose source images through the desktop file
// picker, then loads them like the files source. A cancelled picker yields
// an empty sequence, which the caller reports as insufficient input.
type Picker struct {
	pick func(ctx context.Context) ([]string, error)
}

// NewPicker creates a picker source around a picker dialog function,
// typically dialog.(*Desktop).PickImages.
func NewPicker(pick func(ctx context.Context) ([]string, error)) *Picker {
	return &Picker{pick: pick}
}

// Name implements Source.
func (p *Picker) Name() string { return "select" }

// Acquire implements Source.
func (p *Picker) Acquire(ctx context.Context) (*Sequence, error) {
	paths, err := p.pick(ctx)
	if err != nil {
		return nil, fmt.Errorf("source: image picker: %w", err)
	}
	log.Debug("images selected", "count", len(paths))
	return NewFiles(paths).Acquire(ctx)
}
