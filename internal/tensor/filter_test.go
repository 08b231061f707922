package tensor

import (
	"errors"
	"testing"
)

func TestMedianFilterRejectsBadKernelSize(t *testing.T) {
	tn := mustNew(t, 3, 3, 1, make([]float32, 9))
	for _, size := range []int{0, -3, 2, 4} {
		if _, err := tn.MedianFilter(size); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("MedianFilter(%d): expected ErrInvalidParameter, got %v", size, err)
		}
	}
}

func TestMedianFilterSizeOneIsIdentity(t *testing.T) {
	data := []float32{0.1, 0.9, 0.3, 0.7}
	tn := mustNew(t, 2, 2, 1, data)

	out, err := tn.MedianFilter(1)
	if err != nil {
		t.Fatal(err)
	}
	for i := range data {
		if out.Data()[i] != data[i] {
			t.Errorf("Sample %d = %v, want %v", i, out.Data()[i], data[i])
		}
	}
}

func TestMedianFilterRemovesImpulse(t *testing.T) {
	// Salt noise on a flat background disappears under a 3x3 median.
	tn, err := NewFull(5, 5, 1, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	tn.Data()[2*5+2] = 1

	out, err := tn.MedianFilter(3)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range out.Data() {
		if v != 0.2 {
			t.Fatalf("Sample %d = %v, want 0.2 after impulse removal", i, v)
		}
	}
}

func TestMedianFilterKnownWindow(t *testing.T) {
	// Center pixel's 3x3 window holds 0..8 scaled; its median is 4/8.
	data := []float32{0, 0.125, 0.25, 0.375, 0.5, 0.625, 0.75, 0.875, 1}
	tn := mustNew(t, 3, 3, 1, data)

	out, err := tn.MedianFilter(3)
	if err != nil {
		t.Fatal(err)
	}
	if out.Data()[4] != 0.5 {
		t.Errorf("Center median = %v, want 0.5", out.Data()[4])
	}
}

func TestBilateralFilterValidation(t *testing.T) {
	tn := mustNew(t, 3, 3, 1, make([]float32, 9))
	cases := []struct {
		size                     int
		sigmaSpatial, sigmaRange float64
	}{
		{2, 1, 1},
		{0, 1, 1},
		{3, 0, 1},
		{3, 1, 0},
		{3, -1, 1},
		{3, 1, -0.5},
	}
	for _, c := range cases {
		_, err := tn.BilateralFilter(c.size, c.sigmaSpatial, c.sigmaRange)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("BilateralFilter(%d, %v, %v): expected ErrInvalidParameter, got %v",
				c.size, c.sigmaSpatial, c.sigmaRange, err)
		}
	}
}

func TestBilateralFilterPreservesConstant(t *testing.T) {
	tn, err := NewFull(6, 6, 3, 0.4)
	if err != nil {
		t.Fatal(err)
	}
	out, err := tn.BilateralFilter(5, 2, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range out.Data() {
		assertNear(t, 0.4, v, 1e-6, "constant image")
	}
}

func TestBilateralFilterPreservesEdges(t *testing.T) {
	// A hard 0/1 step with a tight range sigma: the edge must stay much
	// sharper than under a Gaussian blur of the same spatial extent.
	w, h := 10, 4
	data := make([]float32, w*h)
	for y := 0; y < h; y++ {
		for x := w / 2; x < w; x++ {
			data[y*w+x] = 1
		}
	}
	tn := mustNew(t, w, h, 1, data)

	bilateral, err := tn.BilateralFilter(5, 2, 0.05)
	if err != nil {
		t.Fatal(err)
	}
	gaussian, err := tn.GaussianBlur(2)
	if err != nil {
		t.Fatal(err)
	}

	// Compare the pixel just left of the step.
	i := 1*w + w/2 - 1
	bErr := float64(bilateral.Data()[i])  // distance from the dark side's 0
	gErr := float64(gaussian.Data()[i])
	if bErr >= gErr {
		t.Errorf("Bilateral smeared the edge (%v) at least as much as Gaussian (%v)", bErr, gErr)
	}
	if bErr > 0.05 {
		t.Errorf("Bilateral edge leakage %v, want near 0", bErr)
	}
}
