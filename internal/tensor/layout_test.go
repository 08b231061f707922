package tensor

import (
	"errors"
	"testing"
)

func TestCHWRoundTrip(t *testing.T) {
	// Arbitrary extents; values chosen so every slot is distinct.
	w, h, c := 4, 3, 3
	chw := make([]float32, w*h*c)
	for i := range chw {
		chw[i] = float32(i) * 0.125
	}

	tn, err := FromCHW(w, h, c, chw)
	if err != nil {
		t.Fatal(err)
	}
	back := tn.ToCHW()

	for i := range chw {
		if back[i] != chw[i] {
			t.Fatalf("CHW roundtrip diverged at %d: %v != %v", i, back[i], chw[i])
		}
	}
}

func TestCHWReordering(t *testing.T) {
	// 2x1 image, 2 channels. CHW planes: ch0 = [1, 2], ch1 = [3, 4].
	tn, err := FromCHW(2, 1, 2, []float32{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}

	// Interleaved: pixel0 = (1, 3), pixel1 = (2, 4).
	want := []float32{1, 3, 2, 4}
	for i, v := range tn.Data() {
		if v != want[i] {
			t.Errorf("HWC[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestFromCHWValidatesLength(t *testing.T) {
	_, err := FromCHW(2, 2, 3, make([]float32, 10))
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("Expected ErrInvalidDimensions, got %v", err)
	}
}

func TestHWCRoundTrip(t *testing.T) {
	data := []float32{0.5, 0.25, 0.75, 1}
	tn, err := FromHWC(2, 2, 1, data)
	if err != nil {
		t.Fatal(err)
	}

	// FromHWC copies: mutating the source must not affect the tensor.
	data[0] = -1
	if tn.Data()[0] != 0.5 {
		t.Error("FromHWC aliased the caller's buffer")
	}

	out := tn.ToHWC()
	out[1] = -1
	if tn.Data()[1] != 0.25 {
		t.Error("ToHWC aliased the tensor's buffer")
	}
}
