package source

import (
	"context"
	"fmt"
)

// DemoSet describes one bundled demo dataset.
type DemoSet struct {
	Name   string
	Frames int
}

// demoSets is the fixed dataset table; the slice index is the CLI argument.
var demoSets = []DemoSet{
	{Name: "carmel", Frames: 18},
	{Name: "diamondhead", Frames: 23},
	{Name: "example", Frames: 2},
	{Name: "fishbowl", Frames: 13},
	{Name: "goldengate", Frames: 6},
	{Name: "halfdome", Frames: 14},
	{Name: "hotel", Frames: 8},
	{Name: "office", Frames: 4},
	{Name: "rio", Frames: 56},
	{Name: "shanghai", Frames: 30},
	{Name: "yard", Frames: 9},
}

// DemoSets returns a copy of the demo dataset table in index order.
func DemoSets() []DemoSet {
	out := make([]DemoSet, len(demoSets))
	copy(out, demoSets)
	return out
}

// Filenames lists the dataset's image paths, ./demos/<name>/<name>-NN.png
// with NN zero-padded to two digits.
func (s DemoSet) Filenames() []string {
	paths := make([]string, 0, s.Frames)
	for i := 0; i < s.Frames; i++ {
		paths = append(paths, fmt.Sprintf("./demos/%s/%s-%02d.png", s.Name, s.Name, i))
	}
	return paths
}

// Demo loads one of the bundled demo datasets.
type Demo struct {
	set DemoSet
}

// NewDemo creates a demo source by table index.
func NewDemo(index int) (*Demo, error) {
	if index < 0 || index >= len(demoSets) {
		return nil, fmt.Errorf("%w: %d (valid: 0-%d)", ErrDemoIndex, index, len(demoSets)-1)
	}
	return &Demo{set: demoSets[index]}, nil
}

// Name implements Source.
func (d *Demo) Name() string { return "demo" }

// Acquire implements Source.
func (d *Demo) Acquire(ctx context.Context) (*Sequence, error) {
	return NewFiles(d.set.Filenames()).Acquire(ctx)
}
