package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qinka/shanan-cv/internal/tensor"
)

func TestKeypointsDrawsDisc(t *testing.T) {
	tn := blank(t, 9, 9, 3)

	require.NoError(t, Keypoints(tn, []Keypoint{NewKeypoint(4, 4)}, 2, red))

	assert.Equal(t, []float32{1, 0, 0}, pixel(tn, 4, 4), "center")
	assert.Equal(t, []float32{1, 0, 0}, pixel(tn, 6, 4), "radius reach")
	assert.Equal(t, []float32{0, 0, 0}, pixel(tn, 7, 4), "outside radius")
	assert.Equal(t, []float32{0, 0, 0}, pixel(tn, 6, 6), "disc corner excluded")
}

func TestKeypointsRadiusZeroMarksPixel(t *testing.T) {
	tn := blank(t, 3, 3, 3)
	require.NoError(t, Keypoints(tn, []Keypoint{NewKeypoint(1, 1)}, 0, red))

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := []float32{0, 0, 0}
			if x == 1 && y == 1 {
				want = []float32{1, 0, 0}
			}
			assert.Equal(t, want, pixel(tn, x, y), "(%d,%d)", x, y)
		}
	}
}

func TestKeypointsSkipsInvisible(t *testing.T) {
	tn := blank(t, 5, 5, 3)
	hidden := Keypoint{X: 2, Y: 2, Visible: false}

	require.NoError(t, Keypoints(tn, []Keypoint{hidden}, 1, red))
	for _, v := range tn.Data() {
		assert.Zero(t, v, "invisible keypoint must not draw")
	}
}

func TestKeypointsClipsOutOfBounds(t *testing.T) {
	tn := blank(t, 4, 4, 3)
	points := []Keypoint{NewKeypoint(-10, -10), NewKeypoint(3, 0)}

	require.NoError(t, Keypoints(tn, points, 1, red))
	assert.Equal(t, []float32{1, 0, 0}, pixel(tn, 3, 0), "in-bounds point drawn")
}

func TestKeypointsInvalidRadius(t *testing.T) {
	tn := blank(t, 4, 4, 3)
	err := Keypoints(tn, []Keypoint{NewKeypoint(1, 1)}, -1, red)
	assert.ErrorIs(t, err, tensor.ErrInvalidParameter)
}

func TestKeypointConfidenceBuilder(t *testing.T) {
	k := NewKeypoint(3, 4)
	assert.True(t, k.Visible)
	assert.False(t, k.HasConfidence)

	scored := k.WithConfidence(0.8)
	assert.True(t, scored.HasConfidence)
	assert.InDelta(t, 0.8, scored.Confidence, 1e-6)
	assert.False(t, k.HasConfidence, "builder copies")
}

func TestSkeletonLinesDrawsSegment(t *testing.T) {
	tn := blank(t, 8, 8, 3)
	points := []Keypoint{NewKeypoint(1, 1), NewKeypoint(6, 1)}

	require.NoError(t, SkeletonLines(tn, points, []Connection{{0, 1}}, 1, red))

	for x := 1; x <= 6; x++ {
		assert.Equal(t, []float32{1, 0, 0}, pixel(tn, x, 1), "line pixel (%d,1)", x)
	}
	assert.Equal(t, []float32{0, 0, 0}, pixel(tn, 4, 3), "off-line pixel")
}

func TestSkeletonLinesDiagonal(t *testing.T) {
	tn := blank(t, 6, 6, 3)
	points := []Keypoint{NewKeypoint(0, 0), NewKeypoint(5, 5)}

	require.NoError(t, SkeletonLines(tn, points, []Connection{{0, 1}}, 1, red))
	for i := 0; i < 6; i++ {
		assert.Equal(t, []float32{1, 0, 0}, pixel(tn, i, i), "diagonal pixel (%d,%d)", i, i)
	}
}

func TestSkeletonLinesIndexOutOfBounds(t *testing.T) {
	tn := blank(t, 8, 8, 3)
	points := []Keypoint{NewKeypoint(1, 1), NewKeypoint(6, 6)}
	before := append([]float32(nil), tn.Data()...)

	for _, conns := range [][]Connection{
		{{0, 2}},
		{{-1, 1}},
		{{0, 1}, {1, 5}},
	} {
		err := SkeletonLines(tn, points, conns, 1, red)
		assert.ErrorIs(t, err, tensor.ErrOutOfBounds)
	}
	assert.Equal(t, before, tn.Data(), "validation precedes any drawing")
}

func TestSkeletonLinesSkipsInvisibleEndpoints(t *testing.T) {
	tn := blank(t, 8, 8, 3)
	points := []Keypoint{NewKeypoint(1, 1), {X: 6, Y: 1, Visible: false}}

	require.NoError(t, SkeletonLines(tn, points, []Connection{{0, 1}}, 1, red))
	for _, v := range tn.Data() {
		assert.Zero(t, v, "segment with a hidden endpoint must not draw")
	}
}

func TestSkeletonLinesInvalidThickness(t *testing.T) {
	tn := blank(t, 4, 4, 3)
	err := SkeletonLines(tn, []Keypoint{NewKeypoint(0, 0)}, nil, 0, red)
	assert.ErrorIs(t, err, tensor.ErrInvalidParameter)
}
