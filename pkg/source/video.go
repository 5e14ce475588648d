package source

import (
	"context"
	"fmt"

	"gocv.io/x/gocv"

	"github.com/jkelaty/panorama-stitching/internal/log"
)

// frameReader is the part of the video handle the sampler uses.
type frameReader interface {
	Read(dst *gocv.Mat) bool
	Position() float64
	Seek(frame float64)
	FrameCount() float64
	Close() error
}

// videoFile adapts gocv.VideoCapture to frameReader.
type videoFile struct {
	vc *gocv.VideoCapture
}

func (v videoFile) Read(dst *gocv.Mat) bool { return v.vc.Read(dst) }
func (v videoFile) Position() float64       { return v.vc.Get(gocv.VideoCapturePosFrames) }
func (v videoFile) Seek(frame float64)      { v.vc.Set(gocv.VideoCapturePosFrames, frame) }
func (v videoFile) FrameCount() float64     { return v.vc.Get(gocv.VideoCaptureFrameCount) }
func (v videoFile) Close() error            { return v.vc.Close() }

// Video samples frames from a video file at a fixed frame-count stride
// derived from the sampling frequency.
type Video struct {
	path      string
	frequency float64

	open func(path string) (frameReader, error)
}

// NewVideo creates a video source. The sampling frequency must lie inside
// the open interval (0, 1).
func NewVideo(path string, frequency float64) (*Video, error) {
	if err := CheckFrequency(frequency); err != nil {
		return nil, err
	}
	return &Video{
		path:      path,
		frequency: frequency,
		open:      openVideoFile,
	}, nil
}

func openVideoFile(path string) (frameReader, error) {
	vc, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, err
	}
	return videoFile{vc: vc}, nil
}

// CheckFrequency rejects sampling frequencies outside the open interval (0, 1).
func CheckFrequency(f float64) error {
	if f <= 0 || f >= 1 {
		return fmt.Errorf("%w: %v", ErrFrequency, f)
	}
	return nil
}

// Name implements Source.
func (v *Video) Name() string { return "video" }

// Acquire walks the video keeping one frame per stride. The stride is
// frameCount*frequency rounded down, and the cursor advances from the
// position of each kept frame, so a 100-frame video at frequency 0.1
// yields the frames at 0, 10, ..., 90. A stride that rounds to zero is
// rejected.
func (v *Video) Acquire(ctx context.Context) (*Sequence, error) {
	video, err := v.open(v.path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrVideoOpen, v.path, err)
	}
	defer video.Close()

	total := video.FrameCount()
	stride := int(total * v.frequency)
	if stride < 1 {
		return nil, fmt.Errorf("%w: %d frames at frequency %v", ErrStrideZero, int(total), v.frequency)
	}
	log.Debug("sampling video", "path", v.path, "frames", int(total), "stride", stride)

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

		pos := video.Position()
		if !video.Read(&frame) || frame.Empty() {
			break
		}
		seq.Append(frame.Clone())
		video.Seek(pos + float64(stride))
	}

	return seq, nil
}
