package transforms

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestContrastStretchSpansFullRange(t *testing.T) {
	src := gocv.NewMatWithSize(50, 50, gocv.MatTypeCV8UC1)
	defer src.Close()
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			src.SetUCharAt(y, x, uint8(50+(x+y)))
		}
	}

	dst, err := ContrastStretch(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer dst.Close()

	minVal, maxVal := byte(255), byte(0)
	for _, v := range dst.ToBytes() {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	if minVal != 0 {
		t.Errorf("expected minimum sample 0, got %d", minVal)
	}
	if maxVal != 255 {
		t.Errorf("expected maximum sample 255, got %d", maxVal)
	}
}

func TestContrastStretchConstantInput(t *testing.T) {
	src := newColorMat(100, 100, 128, 128, 128)
	defer src.Close()

	dst, err := ContrastStretch(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer dst.Close()

	if dst.Cols() != 100 || dst.Rows() != 100 {
		t.Fatalf("expected 100x100, got %dx%d", dst.Cols(), dst.Rows())
	}

	// Zero-range input normalizes with scale 0, yielding an all-zero image
	for i, v := range dst.ToBytes() {
		if v != 0 {
			t.Fatalf("expected all-zero output, got %d at index %d", v, i)
		}
	}
}
