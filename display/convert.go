package display

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParsePoint parses a cursor position reply of the form "<x>, <y>".
// Whitespace around either coordinate is tolerated, including a trailing
// newline.
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	return Point{X: x, Y: y}, nil
}

// ToPhysical converts a layout-space point to physical pixels by scaling
// each axis by info.Scale and rounding half away from zero.
//
// This is exact only for untransformed monitors. A monitor with a 90 degree
// transform occupies a swapped-axis rectangle in layout space, which this
// conversion does not account for.
func (p Point) ToPhysical(info DisplayInfo) Point {
	return Point{
		X: int(math.Round(float64(p.X) * info.Scale)),
		Y: int(math.Round(float64(p.Y) * info.Scale)),
	}
}
