package source

import "gocv.io/x/gocv"

// Sequence is the ordered list of images accumulated by a source. Order is
// significant: the stitcher uses it for adjacency. A Sequence owns its mats
// and releases them on Close; it only ever grows during acquisition.
type Sequence struct {
	mats []gocv.Mat
}

// NewSequence creates an empty sequence.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Append adds an image to the end of the sequence. The sequence takes
// ownership of the mat.
func (s *Sequence) Append(img gocv.Mat) {
	s.mats = append(s.mats, img)
}

// Len returns the number of images.
func (s *Sequence) Len() int {
	return len(s.mats)
}

// Mats returns the images in acquisition order. The sequence retains
// ownership; callers must not close them.
func (s *Sequence) Mats() []gocv.Mat {
	return s.mats
}

// Close releases every image in the sequence.
func (s *Sequence) Close() error {
	var first error
	for i := range s.mats {
		if err := s.mats[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	s.mats = nil
	return first
}
