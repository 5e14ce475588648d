// Package source implements the image acquisition strategies: an explicit
// file list, the desktop file picker, interactive camera capture, video
// frame sampling, and the bundled demo datasets. Every strategy produces an
// ordered Sequence of decoded images ready for stitching.
package source

import "context"

// Source produces an ordered image sequence from one acquisition strategy.
type Source interface {
	// Name identifies the strategy in logs.
	Name() string

	// Acquire produces the image sequence. On error no sequence is
	// returned and nothing is left open.
	Acquire(ctx context.Context) (*Sequence, error)
}
