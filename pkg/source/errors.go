package source

import "errors"

var (
	// ErrFrequency is returned when a sampling frequency is outside (0, 1).
	ErrFrequency = errors.New("source: sampling frequency must be inside (0, 1)")

	// ErrStrideZero is returned when the computed frame stride rounds to zero.
	ErrStrideZero = errors.New("source: video too short for sampling frequency")

	// ErrCameraOpen is returned when the camera device cannot be opened.
	ErrCameraOpen = errors.New("source: cannot open camera device")

	// ErrVideoOpen is returned when the video file cannot be opened.
	ErrVideoOpen = errors.New("source: cannot open video file")

	// ErrDemoIndex is returned for a demo index outside the dataset table.
	ErrDemoIndex = errors.New("source: demo index out of range")
)
