// Morphological operations with a square structuring element.
package transforms

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Dilate grows lighter areas using a square structuring element of side
// kernelSize.
func Dilate(src gocv.Mat, kernelSize int) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	if kernelSize <= 0 {
		return gocv.NewMat(), fmt.Errorf("kernel size must be positive, got: %d", kernelSize)
	}

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(kernelSize, kernelSize))
	defer kernel.Close()

	dst := gocv.NewMat()
	gocv.Dilate(src, &dst, kernel)

	logMat("dilation", "output", dst)
	return dst, nil
}

// Erode shrinks lighter areas using a square structuring element of side
// kernelSize.
func Erode(src gocv.Mat, kernelSize int) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	if kernelSize <= 0 {
		return gocv.NewMat(), fmt.Errorf("kernel size must be positive, got: %d", kernelSize)
	}

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(kernelSize, kernelSize))
	defer kernel.Close()

	dst := gocv.NewMat()
	gocv.Erode(src, &dst, kernel)

	logMat("erosion", "output", dst)
	return dst, nil
}

// Dilation exposes Dilate through the algorithm registry.
type Dilation struct{}

func NewDilation() *Dilation {
	return &Dilation{}
}

func (d *Dilation) Apply(input gocv.Mat, params map[string]interface{}) (gocv.Mat, error) {
	return Dilate(input, kernelSizeParam(params))
}

func (d *Dilation) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{
		"kernel_size": 3.0,
	}
}

func (d *Dilation) GetName() string {
	return "Dilation"
}

func (d *Dilation) GetDescription() string {
	return "Morphological dilation adding pixels around lighter areas"
}

func (d *Dilation) Validate(params map[string]interface{}) error {
	return validateKernelSize(params)
}

func (d *Dilation) GetParameterInfo() []ParameterInfo {
	return kernelSizeInfo()
}

// Erosion exposes Erode through the algorithm registry.
type Erosion struct{}

func NewErosion() *Erosion {
	return &Erosion{}
}

func (e *Erosion) Apply(input gocv.Mat, params map[string]interface{}) (gocv.Mat, error) {
	return Erode(input, kernelSizeParam(params))
}

func (e *Erosion) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{
		"kernel_size": 3.0,
	}
}

func (e *Erosion) GetName() string {
	return "Erosion"
}

func (e *Erosion) GetDescription() string {
	return "Morphological erosion removing pixels around lighter areas"
}

func (e *Erosion) Validate(params map[string]interface{}) error {
	return validateKernelSize(params)
}

func (e *Erosion) GetParameterInfo() []ParameterInfo {
	return kernelSizeInfo()
}

func kernelSizeParam(params map[string]interface{}) int {
	kernelSize := 3
	if val, ok := params["kernel_size"]; ok {
		if v, ok := val.(float64); ok {
			kernelSize = int(v)
		}
	}
	return kernelSize
}

func validateKernelSize(params map[string]interface{}) error {
	if val, ok := params["kernel_size"]; ok {
		if v, ok := val.(float64); ok {
			if v < 1 || v > 31 {
				return fmt.Errorf("kernel_size must be between 1 and 31")
			}
		}
	}

	return nil
}

func kernelSizeInfo() []ParameterInfo {
	return []ParameterInfo{
		{
			Name:        "kernel_size",
			Type:        "int",
			Min:         1.0,
			Max:         31.0,
			Default:     3.0,
			Description: "Side of the square structuring element",
		},
	}
}
