package app

import "errors"

var (
	// ErrNoMode is returned when no acquisition mode was selected.
	ErrNoMode = errors.New("app: no acquisition mode selected")

	// ErrNoImages is returned when the image mode has an empty file list.
	ErrNoImages = errors.New("app: no image files given")

	// ErrNoVideo is returned when the video mode has no video path.
	ErrNoVideo = errors.New("app: no video file given")

	// ErrBadDevice is returned for a negative camera device index.
	ErrBadDevice = errors.New("app: camera device index must not be negative")

	// ErrInsufficientInput is returned when fewer than two images were
	// acquired, so there is nothing to stitch.
	ErrInsufficientInput = errors.New("app: need at least two images to stitch")
)
