// Panorama Stitcher - create a panoramic image from overlapping photos.
//
// All the interesting work happens in internal/cli and pkg; main only maps
// the outcome to an exit code.
package main

import (
	"os"

	"github.com/jkelaty/panorama-stitching/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
