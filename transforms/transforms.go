// Package transforms provides stateless single-image operations used as
// building blocks of the trichome analysis pipeline. Every function takes a
// gocv.Mat, returns a newly allocated gocv.Mat the caller owns, and never
// mutates or retains its input.
package transforms

import (
	"gocv.io/x/gocv"
)

// ensureGrayscale returns a single-channel view of the input. The returned
// Mat must be closed by the caller only when it differs from the input.
func ensureGrayscale(input gocv.Mat) gocv.Mat {
	if input.Channels() == 1 {
		return input
	}

	gray := gocv.NewMat()
	gocv.CvtColor(input, &gray, gocv.ColorBGRToGray)
	return gray
}
