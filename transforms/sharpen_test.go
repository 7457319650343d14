package transforms

import (
	"bytes"
	"testing"

	"gocv.io/x/gocv"
)

func TestSharpenFlatImageUnchanged(t *testing.T) {
	src := newColorMat(40, 40, 90, 90, 90)
	defer src.Close()
	original := src.ToBytes()

	// Kernel sums to 1, so constant regions are invariant even when applied twice
	once, err := Sharpen(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer once.Close()

	twice, err := Sharpen(once)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer twice.Close()

	if !bytes.Equal(original, once.ToBytes()) {
		t.Error("single sharpen changed a flat image")
	}
	if !bytes.Equal(original, twice.ToBytes()) {
		t.Error("double sharpen changed a flat image")
	}
}

func TestSharpenPreservesShape(t *testing.T) {
	src := newBisectedMat(30, 50)
	defer src.Close()

	dst, err := Sharpen(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer dst.Close()

	if dst.Cols() != 50 || dst.Rows() != 30 || dst.Channels() != 3 {
		t.Errorf("shape changed: %dx%d channels=%d", dst.Cols(), dst.Rows(), dst.Channels())
	}
	if dst.Type() != gocv.MatTypeCV8UC3 {
		t.Errorf("expected CV8UC3 output, got %d", int(dst.Type()))
	}
}

func TestSharpenEmptyInput(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()

	if _, err := Sharpen(empty); err == nil {
		t.Fatal("expected error for empty input")
	}
}
