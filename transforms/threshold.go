// Binarization via global Otsu or local mean-adaptive thresholding.
package transforms

import (
	"fmt"

	"gocv.io/x/gocv"
)

// ThresholdMethod selects the binarization strategy.
type ThresholdMethod string

const (
	// ThresholdOtsu computes a single global threshold automatically.
	ThresholdOtsu ThresholdMethod = "otsu"
	// ThresholdAdaptive thresholds against the local block mean minus an offset.
	ThresholdAdaptive ThresholdMethod = "adaptive"
)

// ThresholdOptions controls ApplyThreshold. BlockSize and Offset only apply
// to the adaptive method.
type ThresholdOptions struct {
	Method    ThresholdMethod
	BlockSize int
	Offset    float32
}

// DefaultThresholdOptions returns the pipeline defaults.
func DefaultThresholdOptions() ThresholdOptions {
	return ThresholdOptions{
		Method:    ThresholdOtsu,
		BlockSize: 5,
		Offset:    2,
	}
}

// ApplyThreshold converts the image to grayscale and binarizes it, returning
// a single-channel image holding only 0 and 255.
func ApplyThreshold(src gocv.Mat, opts ThresholdOptions) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	gray := ensureGrayscale(src)
	defer func() {
		if gray.Ptr() != src.Ptr() {
			gray.Close()
		}
	}()

	dst := gocv.NewMat()

	switch opts.Method {
	case ThresholdOtsu:
		gocv.Threshold(gray, &dst, 0, 255, gocv.ThresholdBinary+gocv.ThresholdOtsu)
	case ThresholdAdaptive:
		blockSize := opts.BlockSize
		if blockSize%2 == 0 {
			blockSize++
		}
		gocv.AdaptiveThreshold(gray, &dst, 255, gocv.AdaptiveThresholdMean, gocv.ThresholdBinary, blockSize, opts.Offset)
	default:
		dst.Close()
		return gocv.NewMat(), fmt.Errorf("invalid thresholding method: %q", opts.Method)
	}

	logMat("threshold", "output", dst)
	return dst, nil
}

// BinaryThreshold exposes ApplyThreshold through the algorithm registry.
type BinaryThreshold struct{}

func NewBinaryThreshold() *BinaryThreshold {
	return &BinaryThreshold{}
}

func (b *BinaryThreshold) Apply(input gocv.Mat, params map[string]interface{}) (gocv.Mat, error) {
	opts := DefaultThresholdOptions()

	if val, ok := params["method"]; ok {
		if v, ok := val.(string); ok {
			opts.Method = ThresholdMethod(v)
		}
	}

	if val, ok := params["block_size"]; ok {
		if v, ok := val.(float64); ok {
			opts.BlockSize = int(v)
		}
	}

	if val, ok := params["offset"]; ok {
		if v, ok := val.(float64); ok {
			opts.Offset = float32(v)
		}
	}

	return ApplyThreshold(input, opts)
}

func (b *BinaryThreshold) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{
		"method":     string(ThresholdOtsu),
		"block_size": 5.0,
		"offset":     2.0,
	}
}

func (b *BinaryThreshold) GetName() string {
	return "Threshold"
}

func (b *BinaryThreshold) GetDescription() string {
	return "Binarization separating objects from the background"
}

func (b *BinaryThreshold) Validate(params map[string]interface{}) error {
	if val, ok := params["method"]; ok {
		if v, ok := val.(string); ok {
			if v != string(ThresholdOtsu) && v != string(ThresholdAdaptive) {
				return fmt.Errorf("invalid thresholding method: %q", v)
			}
		}
	}

	if val, ok := params["block_size"]; ok {
		if v, ok := val.(float64); ok {
			if v < 3 || v > 101 {
				return fmt.Errorf("block_size must be between 3 and 101")
			}
		}
	}

	return nil
}

func (b *BinaryThreshold) GetParameterInfo() []ParameterInfo {
	return []ParameterInfo{
		{
			Name:        "method",
			Type:        "enum",
			Default:     string(ThresholdOtsu),
			Description: "Thresholding method",
			Options:     []string{string(ThresholdOtsu), string(ThresholdAdaptive)},
		},
		{
			Name:        "block_size",
			Type:        "int",
			Min:         3.0,
			Max:         101.0,
			Default:     5.0,
			Description: "Neighborhood side for adaptive thresholding (odd)",
		},
		{
			Name:        "offset",
			Type:        "float",
			Min:         -50.0,
			Max:         50.0,
			Default:     2.0,
			Description: "Constant subtracted from the local mean",
		},
	}
}
