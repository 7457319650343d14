package transforms

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestHSVRoundTrip(t *testing.T) {
	src := newColorMat(10, 10, 40, 120, 200)
	defer src.Close()
	original := src.ToBytes()

	hsv, err := BGRToHSV(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer hsv.Close()

	back, err := HSVToBGR(hsv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer back.Close()

	restored := back.ToBytes()
	if len(restored) != len(original) {
		t.Fatalf("size mismatch: %d vs %d", len(restored), len(original))
	}

	// 8-bit quantization allows a small rounding error per sample
	for i := range original {
		diff := int(original[i]) - int(restored[i])
		if diff < -2 || diff > 2 {
			t.Fatalf("round trip off by %d at index %d", diff, i)
		}
	}
}

func TestBGRToLABShape(t *testing.T) {
	src := newBisectedMat(32, 48)
	defer src.Close()

	lab, err := BGRToLAB(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer lab.Close()

	if lab.Cols() != 48 || lab.Rows() != 32 || lab.Channels() != 3 {
		t.Errorf("shape changed: %dx%d channels=%d", lab.Cols(), lab.Rows(), lab.Channels())
	}
	if lab.Type() != gocv.MatTypeCV8UC3 {
		t.Errorf("expected CV8UC3 output, got %d", int(lab.Type()))
	}
}

func TestColorConversionEmptyInput(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()

	if _, err := BGRToHSV(empty); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, err := BGRToLAB(empty); err == nil {
		t.Fatal("expected error for empty input")
	}
}
