package source

import (
	"context"
	"errors"
	"testing"

	"gocv.io/x/gocv"
)

// fakeReader simulates a video file: reading advances the cursor by one
// frame, seeking moves it anywhere, and reads past the end fail.
type fakeReader struct {
	total  float64
	cursor float64
	reads  []float64
	closed bool
}

func (r *fakeReader) Read(dst *gocv.Mat) bool {
	if r.cursor >= r.total {
		return false
	}
	r.reads = append(r.reads, r.cursor)
	fill := gocv.NewMatWithSize(8, 8, gocv.MatTypeCV8UC3)
	fill.CopyTo(dst)
	fill.Close()
	r.cursor++
	return true
}

func (r *fakeReader) Position() float64   { return r.cursor }
func (r *fakeReader) Seek(frame float64)  { r.cursor = frame }
func (r *fakeReader) FrameCount() float64 { return r.total }
func (r *fakeReader) Close() error        { r.closed = true; return nil }

func newFakeVideo(reader *fakeReader, frequency float64) *Video {
	return &Video{
		path:      "test.mp4",
		frequency: frequency,
		open: func(string) (frameReader, error) {
			return reader, nil
		},
	}
}

func TestVideo_StrideWalk(t *testing.T) {
	reader := &fakeReader{total: 100}
	video := newFakeVideo(reader, 0.1)

	seq, err := video.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer seq.Close()

	if seq.Len() != 10 {
		t.Errorf("Expected 10 sampled frames for 100 frames at 0.1, got %d", seq.Len())
	}

	want := []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90}
	if len(reader.reads) != len(want) {
		t.Fatalf("Expected %d reads, got %d (%v)", len(want), len(reader.reads), reader.reads)
	}
	for i, pos := range want {
		if reader.reads[i] != pos {
			t.Errorf("Read %d: expected position %v, got %v", i, pos, reader.reads[i])
		}
	}

	if !reader.closed {
		t.Error("Expected video handle to be closed")
	}
}

func TestVideo_StrideWalkQuarter(t *testing.T) {
	reader := &fakeReader{total: 100}
	video := newFakeVideo(reader, 0.25)

	seq, err := video.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer seq.Close()

	if seq.Len() != 4 {
		t.Errorf("Expected 4 sampled frames for 100 frames at 0.25, got %d", seq.Len())
	}
}

func TestVideo_StrideZeroRejected(t *testing.T) {
	// 10 frames at 0.05 gives stride 0.5, which rounds down to zero.
	reader := &fakeReader{total: 10}
	video := newFakeVideo(reader, 0.05)

	_, err := video.Acquire(context.Background())
	if !errors.Is(err, ErrStrideZero) {
		t.Errorf("Expected ErrStrideZero, got %v", err)
	}
	if !reader.closed {
		t.Error("Expected video handle to be closed after stride rejection")
	}
}

func TestCheckFrequency(t *testing.T) {
	bad := []float64{0, 1, -0.5, 1.5}
	for _, f := range bad {
		if err := CheckFrequency(f); !errors.Is(err, ErrFrequency) {
			t.Errorf("CheckFrequency(%v): expected ErrFrequency, got %v", f, err)
		}
	}

	good := []float64{0.1, 0.5, 0.999}
	for _, f := range good {
		if err := CheckFrequency(f); err != nil {
			t.Errorf("CheckFrequency(%v): unexpected error %v", f, err)
		}
	}
}

func TestNewVideo_RejectsBadFrequency(t *testing.T) {
	if _, err := NewVideo("test.mp4", 1.5); !errors.Is(err, ErrFrequency) {
		t.Errorf("Expected ErrFrequency, got %v", err)
	}
}

func TestVideo_OpenFailure(t *testing.T) {
	video := &Video{
		path:      "missing.mp4",
		frequency: 0.1,
		open: func(string) (frameReader, error) {
			return nil, errors.New("no such file")
		},
	}

	_, err := video.Acquire(context.Background())
	if !errors.Is(err, ErrVideoOpen) {
		t.Errorf("Expected ErrVideoOpen, got %v", err)
	}
}
