// Linear contrast stretching.
package transforms

import (
	"fmt"

	"gocv.io/x/gocv"
)

// ContrastStretch rescales sample values linearly so they span [0, 255].
// A constant image has zero range and comes back all zero, mirroring
// OpenCV's min-max normalization.
func ContrastStretch(src gocv.Mat) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	dst := gocv.NewMat()
	gocv.Normalize(src, &dst, 0, 255, gocv.NormMinMax)

	logMat("contrast_stretch", "output", dst)
	return dst, nil
}

// MinMaxStretch exposes ContrastStretch through the algorithm registry.
type MinMaxStretch struct{}

func NewMinMaxStretch() *MinMaxStretch {
	return &MinMaxStretch{}
}

func (m *MinMaxStretch) Apply(input gocv.Mat, params map[string]interface{}) (gocv.Mat, error) {
	return ContrastStretch(input)
}

func (m *MinMaxStretch) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{}
}

func (m *MinMaxStretch) GetName() string {
	return "Contrast Stretch"
}

func (m *MinMaxStretch) GetDescription() string {
	return "Linear min-max normalization of sample values to [0, 255]"
}

func (m *MinMaxStretch) Validate(params map[string]interface{}) error {
	return nil
}

func (m *MinMaxStretch) GetParameterInfo() []ParameterInfo {
	return nil
}
