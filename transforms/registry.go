// Name-based algorithm registry over the typed transform functions.
package transforms

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Algorithm defines the interface for registered image transforms.
type Algorithm interface {
	Apply(input gocv.Mat, params map[string]interface{}) (gocv.Mat, error)
	GetDefaultParams() map[string]interface{}
	GetName() string
	GetDescription() string
	Validate(params map[string]interface{}) error
	GetParameterInfo() []ParameterInfo
}

var algorithms = make(map[string]Algorithm)

func Register(name string, algorithm Algorithm) {
	algorithms[name] = algorithm
}

func Get(name string) (Algorithm, bool) {
	algorithm, exists := algorithms[name]
	return algorithm, exists
}

func Apply(name string, input gocv.Mat, params map[string]interface{}) (gocv.Mat, error) {
	algorithm, exists := algorithms[name]
	if !exists {
		return gocv.NewMat(), fmt.Errorf("algorithm not found: %s", name)
	}

	return algorithm.Apply(input, params)
}

func ValidateParameters(name string, params map[string]interface{}) error {
	algorithm, exists := algorithms[name]
	if !exists {
		return fmt.Errorf("algorithm not found: %s", name)
	}

	return algorithm.Validate(params)
}

func IsValidAlgorithm(name string) bool {
	_, exists := algorithms[name]
	return exists
}

func GetAllAlgorithms() map[string]Algorithm {
	result := make(map[string]Algorithm)
	for name, algorithm := range algorithms {
		result[name] = algorithm
	}
	return result
}

func GetAlgorithmsByCategory() map[string][]string {
	return map[string][]string{
		"Geometry": {
			"resize",
		},
		"Enhancement": {
			"clahe_contrast",
			"sharpen",
			"nlm_denoise",
			"contrast_stretch",
		},
		"Binarization": {
			"threshold",
		},
		"Morphology": {
			"dilation",
			"erosion",
		},
		"Color": {
			"bgr_to_hsv",
			"bgr_to_lab",
		},
		"Edges": {
			"edge_detect",
		},
	}
}

func init() {
	Register("resize", NewLinearResize())
	Register("clahe_contrast", NewClaheContrast())
	Register("sharpen", NewKernelSharpen())
	Register("nlm_denoise", NewNlmDenoise())
	Register("contrast_stretch", NewMinMaxStretch())
	Register("threshold", NewBinaryThreshold())
	Register("dilation", NewDilation())
	Register("erosion", NewErosion())
	Register("bgr_to_hsv", NewHsvConversion())
	Register("bgr_to_lab", NewLabConversion())
	Register("edge_detect", NewEdgeDetection())
}
