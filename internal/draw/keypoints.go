package draw

import (
	"fmt"
	"math"

	"github.com/Qinka/shanan-cv/internal/tensor"
)

// Keypoints draws a filled disc of the given radius at every visible
// keypoint. Invisible keypoints are skipped and out-of-bounds discs are
// clipped, never errors. radius must be >= 0; radius 0 marks single
// pixels.
func Keypoints(t *tensor.Tensor, points []Keypoint, radius int, color Color) error {
	if radius < 0 {
		return fmt.Errorf("%w: radius %d must be >= 0", tensor.ErrInvalidParameter, radius)
	}
	for _, p := range points {
		if !p.Visible {
			continue
		}
		disc(t, int(math.Round(float64(p.X))), int(math.Round(float64(p.Y))), radius, color)
	}
	return nil
}

// SkeletonLines draws a line segment of the given thickness between each
// connected keypoint pair. Connections are validated up front: an index at
// or beyond len(points) returns ErrOutOfBounds before anything is drawn.
// Pairs with an invisible endpoint are skipped; segments are clipped to
// the tensor bounds.
func SkeletonLines(t *tensor.Tensor, points []Keypoint, connections []Connection, thickness int, color Color) error {
	if thickness < 1 {
		return fmt.Errorf("%w: thickness %d must be >= 1", tensor.ErrInvalidParameter, thickness)
	}
	for _, conn := range connections {
		for _, idx := range conn {
			if idx < 0 || idx >= len(points) {
				return fmt.Errorf("%w: skeleton connection index %d, have %d keypoints",
					tensor.ErrOutOfBounds, idx, len(points))
			}
		}
	}

	for _, conn := range connections {
		a, b := points[conn[0]], points[conn[1]]
		if !a.Visible || !b.Visible {
			continue
		}
		line(t,
			int(math.Round(float64(a.X))), int(math.Round(float64(a.Y))),
			int(math.Round(float64(b.X))), int(math.Round(float64(b.Y))),
			thickness, color)
	}
	return nil
}

// disc fills a circle of the given radius centered at (cx, cy), clipped.
func disc(t *tensor.Tensor, cx, cy, radius int, color Color) {
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				setPixel(t, cx+dx, cy+dy, color)
			}
		}
	}
}

// line rasterizes a segment with Bresenham's algorithm, stamping a disc of
// radius thickness/2 at every step.
func line(t *tensor.Tensor, x0, y0, x1, y1, thickness int, color Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	radius := thickness / 2
	for {
		disc(t, x0, y0, radius, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
