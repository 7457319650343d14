package transforms

import (
	"gocv.io/x/gocv"
)

// newColorMat builds a rows x cols CV8UC3 image filled with the given BGR
// value.
func newColorMat(rows, cols int, b, g, r uint8) gocv.Mat {
	return gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(float64(b), float64(g), float64(r), 0),
		rows, cols, gocv.MatTypeCV8UC3)
}

// newBisectedMat builds a color image whose left half is dark (30) and right
// half bright (200), giving thresholds and edge detectors a clean boundary.
func newBisectedMat(rows, cols int) gocv.Mat {
	mat := newColorMat(rows, cols, 30, 30, 30)
	for y := 0; y < rows; y++ {
		for x := cols / 2; x < cols; x++ {
			for c := 0; c < 3; c++ {
				mat.SetUCharAt(y, x*3+c, 200)
			}
		}
	}
	return mat
}

func uniqueBytes(mat gocv.Mat) map[byte]bool {
	values := make(map[byte]bool)
	for _, v := range mat.ToBytes() {
		values[v] = true
	}
	return values
}
