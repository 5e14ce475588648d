package source

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/jkelaty/panorama-stitching/internal/log"
	"github.com/jkelaty/panorama-stitching/pkg/console"
)

// Key codes reported by the preview window.
const (
	keyReturn = 13
	keyEscape = 27
)

const (
	cameraWindow = "Camera feed"
	captureHint  = "Press RETURN to capture frame or ESC to exit"
)

// captureDevice is the part of the camera handle the capture loop uses.
// *gocv.VideoCapture satisfies it.
type captureDevice interface {
	Read(dst *gocv.Mat) bool
	Close() error
}

// previewWindow is the part of the preview window the capture loop uses.
// *gocv.Window satisfies it.
type previewWindow interface {
	IMShow(img gocv.Mat)
	WaitKey(delay int) int
	Close() error
}

// Camera captures frames interactively from a local camera. Each RETURN
// press accepts the frame currently on screen; ESC finishes the session.
type Camera struct {
	device int

	openDevice func(device int) (captureDevice, error)
	openWindow func(title string) previewWindow
}

// NewCamera creates a camera source for the given device index.
func NewCamera(device int) *Camera {
	return &Camera{
		device:     device,
		openDevice: openCaptureDevice,
		openWindow: openPreviewWindow,
	}
}

func openCaptureDevice(device int) (captureDevice, error) {
	return gocv.VideoCaptureDevice(device)
}

func openPreviewWindow(title string) previewWindow {
	return gocv.NewWindow(title)
}

// Name implements Source.
func (c *Camera) Name() string { return "camera" }

// Acquire runs the preview loop until ESC is pressed or the camera stops
// producing frames. Accepted frames are clones of the raw capture buffer,
// never the overlaid display copy, so later reads cannot overwrite them.
func (c *Camera) Acquire(ctx context.Context) (*Sequence, error) {
	cam, err := c.openDevice(c.device)
	if err != nil {
		return nil, fmt.Errorf("%w %d: %v", ErrCameraOpen, c.device, err)
	}
	defer cam.Close()

	win := c.openWindow(cameraWindow)
	defer win.Close()

	seq := NewSequence()
	frame := gocv.NewMat()
	defer frame.Close()

	for {
		select {
		case <-ctx.Done():
			seq.Close()
			return nil, ctx.Err()
		default:
		}

		if !cam.Read(&frame) || frame.Empty() {
			break
		}

		display := frame.Clone()
		drawCaptureHint(&display)
		win.IMShow(display)
		key := win.WaitKey(1)
		display.Close()

		switch key {
		case keyReturn:
			console.Warnf("Adding frame...")
			seq.Append(frame.Clone())
			log.Debug("frame accepted", "count", seq.Len())
		case keyEscape:
			console.Infof("Finished taking images...")
			return seq, nil
		}
	}

	return seq, nil
}

// drawCaptureHint renders the instruction line near the bottom of the
// display frame, white text over a dark outline.
func drawCaptureHint(img *gocv.Mat) {
	origin := image.Pt(20, img.Rows()-30)
	gocv.PutText(img, captureHint, origin, gocv.FontHersheyComplexSmall, 1.0,
		color.RGBA{}, 3)
	gocv.PutText(img, captureHint, origin, gocv.FontHersheyComplexSmall, 1.0,
		color.RGBA{R: 255, G: 255, B: 255}, 1)
}
