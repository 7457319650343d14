// Geometric transforms.
package transforms

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Resize scales the image to exactly width x height using linear
// interpolation. Aspect ratio is not preserved.
func Resize(src gocv.Mat, width, height int) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	if width <= 0 || height <= 0 {
		return gocv.NewMat(), fmt.Errorf("invalid target dimensions: %dx%d", width, height)
	}

	dst := gocv.NewMat()
	err := gocv.Resize(src, &dst, image.Point{X: width, Y: height}, 0, 0, gocv.InterpolationLinear)
	if err != nil {
		dst.Close()
		return gocv.NewMat(), err
	}

	logMat("resize", "output", dst)
	return dst, nil
}

// LinearResize exposes Resize through the algorithm registry.
type LinearResize struct{}

func NewLinearResize() *LinearResize {
	return &LinearResize{}
}

func (r *LinearResize) Apply(input gocv.Mat, params map[string]interface{}) (gocv.Mat, error) {
	width := 0
	if val, ok := params["width"]; ok {
		if v, ok := val.(float64); ok {
			width = int(v)
		}
	}

	height := 0
	if val, ok := params["height"]; ok {
		if v, ok := val.(float64); ok {
			height = int(v)
		}
	}

	return Resize(input, width, height)
}

func (r *LinearResize) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{
		"width":  256.0,
		"height": 256.0,
	}
}

func (r *LinearResize) GetName() string {
	return "Resize"
}

func (r *LinearResize) GetDescription() string {
	return "Linear-interpolation resize to exact target dimensions"
}

func (r *LinearResize) Validate(params map[string]interface{}) error {
	for _, name := range []string{"width", "height"} {
		if val, ok := params[name]; ok {
			if v, ok := val.(float64); ok {
				if v < 1 || v > 32768 {
					return fmt.Errorf("%s must be between 1 and 32768", name)
				}
			}
		}
	}

	return nil
}

func (r *LinearResize) GetParameterInfo() []ParameterInfo {
	return []ParameterInfo{
		{
			Name:        "width",
			Type:        "int",
			Min:         1.0,
			Max:         32768.0,
			Default:     256.0,
			Description: "Target width in pixels",
		},
		{
			Name:        "height",
			Type:        "int",
			Min:         1.0,
			Max:         32768.0,
			Default:     256.0,
			Description: "Target height in pixels",
		},
	}
}
