// Color-space conversions. Color inputs are BGR-ordered, the OpenCV
// convention.
package transforms

import (
	"fmt"

	"gocv.io/x/gocv"
)

// BGRToHSV converts a 3-channel BGR image to the HSV color space.
func BGRToHSV(src gocv.Mat) (gocv.Mat, error) {
	return convertColor(src, gocv.ColorBGRToHSV, "bgr_to_hsv")
}

// BGRToLAB converts a 3-channel BGR image to the LAB color space.
func BGRToLAB(src gocv.Mat) (gocv.Mat, error) {
	return convertColor(src, gocv.ColorBGRToLab, "bgr_to_lab")
}

// HSVToBGR converts a 3-channel HSV image back to BGR.
func HSVToBGR(src gocv.Mat) (gocv.Mat, error) {
	return convertColor(src, gocv.ColorHSVToBGR, "hsv_to_bgr")
}

func convertColor(src gocv.Mat, code gocv.ColorConversionCode, op string) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	dst := gocv.NewMat()
	if err := gocv.CvtColor(src, &dst, code); err != nil {
		dst.Close()
		return gocv.NewMat(), err
	}

	logMat(op, "output", dst)
	return dst, nil
}

// HsvConversion exposes BGRToHSV through the algorithm registry.
type HsvConversion struct{}

func NewHsvConversion() *HsvConversion {
	return &HsvConversion{}
}

func (h *HsvConversion) Apply(input gocv.Mat, params map[string]interface{}) (gocv.Mat, error) {
	return BGRToHSV(input)
}

func (h *HsvConversion) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{}
}

func (h *HsvConversion) GetName() string {
	return "BGR to HSV"
}

func (h *HsvConversion) GetDescription() string {
	return "Conversion from BGR to the HSV color space"
}

func (h *HsvConversion) Validate(params map[string]interface{}) error {
	return nil
}

func (h *HsvConversion) GetParameterInfo() []ParameterInfo {
	return nil
}

// LabConversion exposes BGRToLAB through the algorithm registry.
type LabConversion struct{}

func NewLabConversion() *LabConversion {
	return &LabConversion{}
}

func (l *LabConversion) Apply(input gocv.Mat, params map[string]interface{}) (gocv.Mat, error) {
	return BGRToLAB(input)
}

func (l *LabConversion) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{}
}

func (l *LabConversion) GetName() string {
	return "BGR to LAB"
}

func (l *LabConversion) GetDescription() string {
	return "Conversion from BGR to the LAB color space"
}

func (l *LabConversion) Validate(params map[string]interface{}) error {
	return nil
}

func (l *LabConversion) GetParameterInfo() []ParameterInfo {
	return nil
}
