// Package stitch invokes OpenCV's panorama stitcher over an acquired image
// sequence. The stitching pipeline itself (feature matching, bundle
// adjustment, seam finding, blending) lives entirely inside OpenCV.
package stitch

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/jkelaty/panorama-stitching/internal/log"
	"github.com/jkelaty/panorama-stitching/pkg/source"
)

// Composer stitches an ordered image sequence into a single panorama.
type Composer struct {
	mode gocv.StitcherMode
}

// New creates a Composer in panorama mode.
func New() *Composer {
	return &Composer{mode: gocv.StitcherModePanorama}
}

// Compose runs the stitcher once over the sequence. The caller guarantees
// at least two images; there is no retry. On success the returned mat is
// owned by the caller.
func (c *Composer) Compose(seq *source.Sequence) (gocv.Mat, error) {
	stitcher := gocv.NewStitcher(c.mode)
	defer stitcher.Close()

	pano := gocv.NewMat()
	status := stitcher.Stitch(seq.Mats(), &pano)
	if status != gocv.StitchOK {
		pano.Close()
		return gocv.Mat{}, fmt.Errorf("%w: %s", ErrCompose, statusText(status))
	}

	log.Debug("panorama composed",
		"images", seq.Len(), "cols", pano.Cols(), "rows", pano.Rows())
	return pano, nil
}

// statusText names the stitcher status codes for error messages.
func statusText(status gocv.StitchStatus) string {
	switch status {
	case gocv.StitchErrNeedMoreImgs:
		return "need more images"
	case gocv.StitchErrHomographyEstFail:
		return "homography estimation failed"
	case gocv.StitchErrCameraParamsAdjustFail:
		return "camera parameter adjustment failed"
	default:
		return fmt.Sprintf("status %d", int(status))
	}
}
