package transforms

import (
	"strings"
	"testing"
)

func TestApplyThresholdOtsuBinary(t *testing.T) {
	src := newBisectedMat(100, 100)
	defer src.Close()

	dst, err := ApplyThreshold(src, DefaultThresholdOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer dst.Close()

	if dst.Channels() != 1 {
		t.Errorf("expected single-channel output, got %d channels", dst.Channels())
	}

	values := uniqueBytes(dst)
	if len(values) != 2 {
		t.Errorf("expected exactly 2 distinct values, got %d", len(values))
	}
	for v := range values {
		if v != 0 && v != 255 {
			t.Errorf("unexpected sample value %d in binary output", v)
		}
	}
}

func TestApplyThresholdAdaptiveBinary(t *testing.T) {
	src := newBisectedMat(100, 100)
	defer src.Close()

	opts := DefaultThresholdOptions()
	opts.Method = ThresholdAdaptive

	dst, err := ApplyThreshold(src, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer dst.Close()

	if dst.Channels() != 1 {
		t.Errorf("expected single-channel output, got %d channels", dst.Channels())
	}

	values := uniqueBytes(dst)
	for v := range values {
		if v != 0 && v != 255 {
			t.Errorf("unexpected sample value %d in binary output", v)
		}
	}
	if !values[0] || !values[255] {
		t.Error("expected both 0 and 255 in adaptive threshold output")
	}
}

func TestApplyThresholdInvalidMethod(t *testing.T) {
	src := newBisectedMat(20, 20)
	defer src.Close()

	_, err := ApplyThreshold(src, ThresholdOptions{Method: "bogus"})
	if err == nil {
		t.Fatal("expected error for invalid method")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error should name the offending method, got: %v", err)
	}
}
