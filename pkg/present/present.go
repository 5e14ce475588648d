// Package present shows the finished panorama and walks the user through
// the optional save flow.
package present

import (
	"context"
	"fmt"

	"gocv.io/x/gocv"

	"github.com/jkelaty/panorama-stitching/internal/log"
)

const windowTitle = "Panorama"

// SaveDialogs is the part of the dialog surface the presenter uses.
type SaveDialogs interface {
	ConfirmSave(ctx context.Context) (bool, error)
	PickSavePath(ctx context.Context) (string, error)
}

// Alerter reports outcomes to the user, console line plus desktop
// notification.
type Alerter interface {
	Success(msg string)
	Failure(msg string)
}

// viewer blocks until the user dismisses the preview.
type viewer interface {
	View(img gocv.Mat) error
}

// imageWriter persists the panorama.
type imageWriter interface {
	Write(path string, img gocv.Mat) error
}

// Presenter owns the result half of a run: preview, save prompt, reporting.
type Presenter struct {
	dialogs SaveDialogs
	alert   Alerter
	view    viewer
	write   imageWriter
}

// New creates a Presenter over the real preview window and encoder.
func New(dialogs SaveDialogs, alert Alerter) *Presenter {
	return &Presenter{
		dialogs: dialogs,
		alert:   alert,
		view:    panoramaWindow{title: windowTitle},
		write:   matWriter{},
	}
}

// Failure reports a failed run: one red console line plus one alert.
// Nothing is displayed and nothing is offered for saving.
func (p *Presenter) Failure(msg string) {
	p.alert.Failure(msg)
}

// Success announces the panorama, previews it until a key is pressed, then
// offers to save it. Declining, cancelling the destination dialog, or
// picking nothing all mean "do not save" and end the flow quietly.
func (p *Presenter) Success(ctx context.Context, pano gocv.Mat) error {
	p.alert.Success("Panorama successfully created!")

	if err := p.view.View(pano); err != nil {
		return fmt.Errorf("present: preview: %w", err)
	}

	save, err := p.dialogs.ConfirmSave(ctx)
	if err != nil {
		return fmt.Errorf("present: save prompt: %w", err)
	}
	if !save {
		log.Debug("save declined")
		return nil
	}

	path, err := p.dialogs.PickSavePath(ctx)
	if err != nil {
		return fmt.Errorf("present: save location: %w", err)
	}
	if path == "" {
		log.Debug("no save location chosen")
		return nil
	}

	if err := p.write.Write(path, pano); err != nil {
		p.alert.Failure(fmt.Sprintf("Could not save panorama to %s", path))
		return fmt.Errorf("present: %w", err)
	}

	p.alert.Success("Panorama saved at: " + path)
	return nil
}

// panoramaWindow shows the panorama in a highgui window and blocks until
// any key is pressed.
type panoramaWindow struct {
	title string
}

func (w panoramaWindow) View(img gocv.Mat) error {
	win := gocv.NewWindow(w.title)
	win.IMShow(img)
	win.WaitKey(0)
	return win.Close()
}

// matWriter encodes the panorama to disk via OpenCV.
type matWriter struct{}

func (matWriter) Write(path string, img gocv.Mat) error {
	if !gocv.IMWrite(path, img) {
		return fmt.Errorf("could not write %s", path)
	}
	return nil
}
