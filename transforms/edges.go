// Edge detection via Canny or Sobel.
package transforms

import (
	"fmt"

	"gocv.io/x/gocv"
)

// EdgeMethod selects the edge detection algorithm.
type EdgeMethod string

const (
	// EdgeCanny produces a binary edge map with hysteresis thresholding.
	EdgeCanny EdgeMethod = "canny"
	// EdgeSobel produces a float horizontal-gradient image.
	EdgeSobel EdgeMethod = "sobel"
)

const sobelKernelSize = 5

// EdgeOptions controls DetectEdges. The thresholds only apply to the Canny
// method.
type EdgeOptions struct {
	Method        EdgeMethod
	LowThreshold  float32
	HighThreshold float32
}

// DefaultEdgeOptions returns the pipeline defaults.
func DefaultEdgeOptions() EdgeOptions {
	return EdgeOptions{
		Method:        EdgeCanny,
		LowThreshold:  50,
		HighThreshold: 150,
	}
}

// DetectEdges highlights edges in the image. Canny yields a single-channel
// binary edge map; Sobel converts to grayscale first and yields a CV64F
// x-gradient image.
func DetectEdges(src gocv.Mat, opts EdgeOptions) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	dst := gocv.NewMat()

	switch opts.Method {
	case EdgeCanny:
		gocv.Canny(src, &dst, opts.LowThreshold, opts.HighThreshold)
	case EdgeSobel:
		gray := ensureGrayscale(src)
		defer func() {
			if gray.Ptr() != src.Ptr() {
				gray.Close()
			}
		}()
		gocv.Sobel(gray, &dst, gocv.MatTypeCV64F, 1, 0, sobelKernelSize, 1, 0, gocv.BorderDefault)
	default:
		dst.Close()
		return gocv.NewMat(), fmt.Errorf("invalid edge detection method: %q", opts.Method)
	}

	logMat("edge_detect", "output", dst)
	return dst, nil
}

// EdgeDetection exposes DetectEdges through the algorithm registry.
type EdgeDetection struct{}

func NewEdgeDetection() *EdgeDetection {
	return &EdgeDetection{}
}

func (e *EdgeDetection) Apply(input gocv.Mat, params map[string]interface{}) (gocv.Mat, error) {
	opts := DefaultEdgeOptions()

	if val, ok := params["method"]; ok {
		if v, ok := val.(string); ok {
			opts.Method = EdgeMethod(v)
		}
	}

	if val, ok := params["low_threshold"]; ok {
		if v, ok := val.(float64); ok {
			opts.LowThreshold = float32(v)
		}
	}

	if val, ok := params["high_threshold"]; ok {
		if v, ok := val.(float64); ok {
			opts.HighThreshold = float32(v)
		}
	}

	return DetectEdges(input, opts)
}

func (e *EdgeDetection) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{
		"method":         string(EdgeCanny),
		"low_threshold":  50.0,
		"high_threshold": 150.0,
	}
}

func (e *EdgeDetection) GetName() string {
	return "Edge Detection"
}

func (e *EdgeDetection) GetDescription() string {
	return "Canny or Sobel edge detection"
}

func (e *EdgeDetection) Validate(params map[string]interface{}) error {
	if val, ok := params["method"]; ok {
		if v, ok := val.(string); ok {
			if v != string(EdgeCanny) && v != string(EdgeSobel) {
				return fmt.Errorf("invalid edge detection method: %q", v)
			}
		}
	}

	if val, ok := params["low_threshold"]; ok {
		if v, ok := val.(float64); ok {
			if v < 0 || v > 255 {
				return fmt.Errorf("low_threshold must be between 0 and 255")
			}
		}
	}

	if val, ok := params["high_threshold"]; ok {
		if v, ok := val.(float64); ok {
			if v < 0 || v > 255 {
				return fmt.Errorf("high_threshold must be between 0 and 255")
			}
		}
	}

	return nil
}

func (e *EdgeDetection) GetParameterInfo() []ParameterInfo {
	return []ParameterInfo{
		{
			Name:        "method",
			Type:        "enum",
			Default:     string(EdgeCanny),
			Description: "Edge detection method",
			Options:     []string{string(EdgeCanny), string(EdgeSobel)},
		},
		{
			Name:        "low_threshold",
			Type:        "float",
			Min:         0.0,
			Max:         255.0,
			Default:     50.0,
			Description: "Lower hysteresis threshold for Canny",
		},
		{
			Name:        "high_threshold",
			Type:        "float",
			Min:         0.0,
			Max:         255.0,
			Default:     150.0,
			Description: "Upper hysteresis threshold for Canny",
		},
	}
}
