package source

import (
	"context"

	"gocv.io/x/gocv"

	"github.com/jkelaty/panorama-stitching/internal/log"
	"github.com/jkelaty/panorama-stitching/pkg/console"
)

// Files decodes an explicit list of image paths in order.
type Files struct {
	paths []string
}

// NewFiles creates a file-list source.
func NewFiles(paths []string) *Files {
	return &Files{paths: paths}
}

// Name implements Source.
func (f *Files) Name() string { return "files" }

// Acquire decodes each path in order. Paths that are missing or cannot be
// decoded are skipped with a warning rather than aborting the run, so the
// sequence holds only valid images in their input order.
func (f *Files) Acquire(ctx context.Context) (*Sequence, error) {
	seq := NewSequence()
	for _, path := range f.paths {
		img := gocv.IMRead(path, gocv.IMReadColor)
		if img.Empty() {
			img.Close()
			console.Warnf("Skipping %s: could not decode image", path)
			log.Warn("image skipped", "path", path)
			continue
		}
		seq.Append(img)
	}
	log.Debug("images loaded", "requested", len(f.paths), "loaded", seq.Len())
	return seq, nil
}
