// Sharpening via a fixed 3x3 high-pass kernel.
package transforms

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Sharpen convolves the image with a 3x3 kernel (center 5, four-neighbor -1,
// corners 0). The kernel sums to 1, so flat regions are left unchanged.
func Sharpen(src gocv.Mat) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	kernel := sharpenKernel()
	defer kernel.Close()

	dst := gocv.NewMat()
	err := gocv.Filter2D(src, &dst, -1, kernel, image.Point{X: -1, Y: -1}, 0, gocv.BorderDefault)
	if err != nil {
		dst.Close()
		return gocv.NewMat(), err
	}

	logMat("sharpen", "output", dst)
	return dst, nil
}

func sharpenKernel() gocv.Mat {
	kernel := gocv.NewMatWithSize(3, 3, gocv.MatTypeCV32F)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			switch {
			case y == 1 && x == 1:
				kernel.SetFloatAt(y, x, 5)
			case y == 1 || x == 1:
				kernel.SetFloatAt(y, x, -1)
			default:
				kernel.SetFloatAt(y, x, 0)
			}
		}
	}

	return kernel
}

// KernelSharpen exposes Sharpen through the algorithm registry.
type KernelSharpen struct{}

func NewKernelSharpen() *KernelSharpen {
	return &KernelSharpen{}
}

func (k *KernelSharpen) Apply(input gocv.Mat, params map[string]interface{}) (gocv.Mat, error) {
	return Sharpen(input)
}

func (k *KernelSharpen) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{}
}

func (k *KernelSharpen) GetName() string {
	return "Sharpen"
}

func (k *KernelSharpen) GetDescription() string {
	return "High-pass 3x3 kernel sharpening"
}

func (k *KernelSharpen) Validate(params map[string]interface{}) error {
	return nil
}

func (k *KernelSharpen) GetParameterInfo() []ParameterInfo {
	return nil
}
