// Package app orchestrates one run of the tool: acquire an image sequence,
// stitch it, present the result.
package app

import (
	"context"

	"github.com/google/uuid"
	"gocv.io/x/gocv"

	"github.com/jkelaty/panorama-stitching/internal/log"
	"github.com/jkelaty/panorama-stitching/pkg/console"
	"github.com/jkelaty/panorama-stitching/pkg/source"
)

// Stitcher composes an image sequence into a panorama.
type Stitcher interface {
	Compose(seq *source.Sequence) (gocv.Mat, error)
}

// Presenter reports the outcome of a run to the user.
type Presenter interface {
	Success(ctx context.Context, pano gocv.Mat) error
	Failure(msg string)
}

// App wires one acquisition strategy to the stitcher and the presenter.
type App struct {
	Source    source.Source
	Stitcher  Stitcher
	Presenter Presenter
}

// Run executes one acquisition-stitch-present cycle. Every failure is
// reported to the user exactly once before the error is returned for the
// exit code.
func (a *App) Run(ctx context.Context) error {
	logger := log.With("run", uuid.New().String(), "source", a.Source.Name())
	logger.Info("acquiring images")

	seq, err := a.Source.Acquire(ctx)
	if err != nil {
		logger.Error("acquisition failed", "error", err)
		a.Presenter.Failure(err.Error())
		return err
	}
	defer seq.Close()

	logger.Info("acquisition finished", "images", seq.Len())
	if seq.Len() < 2 {
		a.Presenter.Failure("Not enough images provided")
		return ErrInsufficientInput
	}

	console.Successf("Creating panorama...")
	pano, err := a.Stitcher.Compose(seq)
	if err != nil {
		logger.Error("stitching failed", "error", err)
		a.Presenter.Failure("Panorama could not be created.")
		return err
	}
	defer pano.Close()

	return a.Presenter.Success(ctx, pano)
}
