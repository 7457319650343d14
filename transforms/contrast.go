// Contrast enhancement via CLAHE on the LAB luminance channel.
package transforms

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

const (
	claheClipLimit = 2.0
	claheTileSize  = 8
)

// Contrast enhances a 3-channel BGR image by equalizing its luminance
// adaptively: convert to LAB, run CLAHE (clip limit 2.0, 8x8 tiles) on the
// L channel, recompose and convert back.
func Contrast(src gocv.Mat) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	lab := gocv.NewMat()
	defer lab.Close()
	if err := gocv.CvtColor(src, &lab, gocv.ColorBGRToLab); err != nil {
		return gocv.NewMat(), err
	}

	luminance := gocv.NewMat()
	defer luminance.Close()
	gocv.ExtractChannel(lab, &luminance, 0)

	clahe := gocv.NewCLAHEWithParams(claheClipLimit, image.Point{X: claheTileSize, Y: claheTileSize})
	defer clahe.Close()

	equalized := gocv.NewMat()
	defer equalized.Close()
	clahe.Apply(luminance, &equalized)

	gocv.InsertChannel(equalized, &lab, 0)

	dst := gocv.NewMat()
	if err := gocv.CvtColor(lab, &dst, gocv.ColorLabToBGR); err != nil {
		dst.Close()
		return gocv.NewMat(), err
	}

	logMat("clahe_contrast", "output", dst)
	return dst, nil
}

// ClaheContrast exposes Contrast through the algorithm registry. Clip limit
// and tile size are fixed by the pipeline contract.
type ClaheContrast struct{}

func NewClaheContrast() *ClaheContrast {
	return &ClaheContrast{}
}

func (c *ClaheContrast) Apply(input gocv.Mat, params map[string]interface{}) (gocv.Mat, error) {
	return Contrast(input)
}

func (c *ClaheContrast) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{}
}

func (c *ClaheContrast) GetName() string {
	return "CLAHE Contrast"
}

func (c *ClaheContrast) GetDescription() string {
	return "Contrast-limited adaptive histogram equalization of the LAB luminance channel"
}

func (c *ClaheContrast) Validate(params map[string]interface{}) error {
	return nil
}

func (c *ClaheContrast) GetParameterInfo() []ParameterInfo {
	return nil
}
