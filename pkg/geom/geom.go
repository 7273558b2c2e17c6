// Package geom provides the planar primitives for floor-plan analysis:
// points, infinite lines in general form, line segments, scalar domains,
// and polygons. Comparisons are tolerant: values within AbsTol are treated
// as coincident, which absorbs the small gaps and overhangs found in traced
// drawings. Numeric edge cases (vertical lines, parallel lines, degenerate
// domains) are modeled with Inf/NaN sentinels and ok-booleans rather than
// errors; callers branch on them.
package geom

import (
	"fmt"
	"math"
)

// AbsTol is the absolute tolerance for coordinate and scalar closeness.
const AbsTol = 0.01

// Close reports whether a and b are within AbsTol of each other.
// Equal infinities are close; NaN is close to nothing.
func Close(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= AbsTol
}

// Point is a location in the drawing plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceTo returns the Euclidean distance to other.
func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// Equal reports whether both coordinates are within AbsTol of other's.
func (p Point) Equal(other Point) bool {
	return Close(p.X, other.X) && Close(p.Y, other.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// DegenerateInputError reports coordinates that collapse to a single
// point where distinct points are required.
type DegenerateInputError struct {
	Op string
	At Point
}

func (e DegenerateInputError) Error() string {
	return fmt.Sprintf("%s: degenerate input at %s", e.Op, e.At)
}
