// Noise reduction via fast non-local-means denoising.
package transforms

import (
	"fmt"

	"gocv.io/x/gocv"
)

// DenoiseOptions controls non-local-means denoising. Field semantics follow
// OpenCV's fastNlMeansDenoisingColored: H is the luminance filter strength,
// HColor the chroma filter strength, TemplateWindowSize the patch side and
// SearchWindowSize the search area side (both odd).
type DenoiseOptions struct {
	H                  float32
	HColor             float32
	TemplateWindowSize int
	SearchWindowSize   int
}

// DefaultDenoiseOptions returns the pipeline defaults.
func DefaultDenoiseOptions() DenoiseOptions {
	return DenoiseOptions{
		H:                  20,
		HColor:             10,
		TemplateWindowSize: 7,
		SearchWindowSize:   21,
	}
}

// ReduceNoise denoises a 3-channel BGR image by averaging similar patches
// across the image.
func ReduceNoise(src gocv.Mat, opts DenoiseOptions) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	dst := gocv.NewMat()
	gocv.FastNlMeansDenoisingColoredWithParams(src, &dst,
		opts.H, opts.HColor, opts.TemplateWindowSize, opts.SearchWindowSize)

	logMat("nlm_denoise", "output", dst)
	return dst, nil
}

// NlmDenoise exposes ReduceNoise through the algorithm registry.
type NlmDenoise struct{}

func NewNlmDenoise() *NlmDenoise {
	return &NlmDenoise{}
}

func (n *NlmDenoise) Apply(input gocv.Mat, params map[string]interface{}) (gocv.Mat, error) {
	opts := DefaultDenoiseOptions()

	if val, ok := params["h"]; ok {
		if v, ok := val.(float64); ok {
			opts.H = float32(v)
		}
	}

	if val, ok := params["h_color"]; ok {
		if v, ok := val.(float64); ok {
			opts.HColor = float32(v)
		}
	}

	if val, ok := params["template_window_size"]; ok {
		if v, ok := val.(float64); ok {
			opts.TemplateWindowSize = int(v)
		}
	}

	if val, ok := params["search_window_size"]; ok {
		if v, ok := val.(float64); ok {
			opts.SearchWindowSize = int(v)
		}
	}

	// Window sizes must be odd
	if opts.TemplateWindowSize%2 == 0 {
		opts.TemplateWindowSize++
	}
	if opts.SearchWindowSize%2 == 0 {
		opts.SearchWindowSize++
	}

	return ReduceNoise(input, opts)
}

func (n *NlmDenoise) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{
		"h":                    20.0,
		"h_color":              10.0,
		"template_window_size": 7.0,
		"search_window_size":   21.0,
	}
}

func (n *NlmDenoise) GetName() string {
	return "Non-Local Means Denoise"
}

func (n *NlmDenoise) GetDescription() string {
	return "Fast non-local-means denoising for color images"
}

func (n *NlmDenoise) Validate(params map[string]interface{}) error {
	if val, ok := params["h"]; ok {
		if v, ok := val.(float64); ok {
			if v < 1 || v > 100 {
				return fmt.Errorf("h must be between 1 and 100")
			}
		}
	}

	if val, ok := params["h_color"]; ok {
		if v, ok := val.(float64); ok {
			if v < 1 || v > 100 {
				return fmt.Errorf("h_color must be between 1 and 100")
			}
		}
	}

	if val, ok := params["template_window_size"]; ok {
		if v, ok := val.(float64); ok {
			if v < 3 || v > 27 {
				return fmt.Errorf("template_window_size must be between 3 and 27")
			}
		}
	}

	if val, ok := params["search_window_size"]; ok {
		if v, ok := val.(float64); ok {
			if v < 7 || v > 51 {
				return fmt.Errorf("search_window_size must be between 7 and 51")
			}
		}
	}

	return nil
}

func (n *NlmDenoise) GetParameterInfo() []ParameterInfo {
	return []ParameterInfo{
		{
			Name:        "h",
			Type:        "float",
			Min:         1.0,
			Max:         100.0,
			Default:     20.0,
			Description: "Filter strength for the luminance component",
		},
		{
			Name:        "h_color",
			Type:        "float",
			Min:         1.0,
			Max:         100.0,
			Default:     10.0,
			Description: "Filter strength for the color components",
		},
		{
			Name:        "template_window_size",
			Type:        "int",
			Min:         3.0,
			Max:         27.0,
			Default:     7.0,
			Description: "Side of the template patch used for weighted averaging (odd)",
		},
		{
			Name:        "search_window_size",
			Type:        "int",
			Min:         7.0,
			Max:         51.0,
			Default:     21.0,
			Description: "Side of the area searched for similar patches (odd)",
		},
	}
}
