package stitch

import "errors"

var (
	// ErrCompose is returned when the stitcher reports a non-OK status.
	ErrCompose = errors.New("stitch: composition failed")
)
