package app

import (
	"fmt"

	"github.com/jkelaty/panorama-stitching/pkg/source"
)

// Mode selects the acquisition strategy. Exactly one mode is active per run.
type Mode int

const (
	// ModeNone means no strategy was selected.
	ModeNone Mode = iota
	// ModeImages loads an explicit file list.
	ModeImages
	// ModeCamera captures frames interactively.
	ModeCamera
	// ModeSelect picks files through the desktop file picker.
	ModeSelect
	// ModeVideo samples frames from a video file.
	ModeVideo
	// ModeDemo loads a bundled demo dataset.
	ModeDemo
)

// DefaultFrequency is the video sampling frequency when none is given.
const DefaultFrequency = 0.1

// Config selects and parameterizes the acquisition strategy for one run.
// Flag parsing happens in internal/cli; this struct is data only.
type Config struct {
	// Mode picks the acquisition strategy.
	Mode Mode

	// Images is the explicit file list for ModeImages.
	Images []string

	// VideoPath is the video file for ModeVideo.
	VideoPath string

	// Frequency is the video sampling frequency, open interval (0, 1).
	Frequency float64

	// DemoIndex picks a bundled dataset for ModeDemo.
	DemoIndex int

	// CameraDevice is the capture device index for ModeCamera.
	CameraDevice int

	// Debug enables debug-level logging.
	Debug bool
}

// DefaultConfig returns the defaults shared by every mode.
func DefaultConfig() Config {
	return Config{
		Mode:      ModeNone,
		Frequency: DefaultFrequency,
	}
}

// Validate checks the payload of the selected mode before acquisition.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeImages:
		if len(c.Images) == 0 {
			return ErrNoImages
		}
	case ModeCamera:
		if c.CameraDevice < 0 {
			return ErrBadDevice
		}
	case ModeVideo:
		if c.VideoPath == "" {
			return ErrNoVideo
		}
		if err := source.CheckFrequency(c.Frequency); err != nil {
			return err
		}
	case ModeDemo:
		if c.DemoIndex < 0 || c.DemoIndex >= len(source.DemoSets()) {
			return fmt.Errorf("%w: %d", source.ErrDemoIndex, c.DemoIndex)
		}
	case ModeNone:
		return ErrNoMode
	}
	return nil
}
