package geom

import (
	"fmt"
	"math"
)

// Line is an infinite line in general form a·x + b·y + c = 0. A valid
// Line has A and B not both zero; the constructors maintain this.
type Line struct {
	A float64
	B float64
	C float64
}

// LineThroughPoints returns the unique line through p and q.
// Coincident points cannot define a line and yield DegenerateInputError.
func LineThroughPoints(p, q Point) (Line, error) {
	if p == q {
		return Line{}, DegenerateInputError{Op: "line through points", At: p}
	}
	return Line{
		A: p.Y - q.Y,
		B: q.X - p.X,
		C: p.X*q.Y - q.X*p.Y,
	}, nil
}

// LineWithSlope returns the line of the given slope through p. An
// infinite slope yields the vertical line through p.
func LineWithSlope(p Point, slope float64) Line {
	dx, dy := 1.0, slope
	if math.IsInf(slope, 0) {
		dx, dy = 0, 1
	}
	return Line{
		A: -dy,
		B: dx,
		C: p.X*dy - dx*p.Y,
	}
}

// IsVertical reports whether the line is parallel to the y axis.
func (l Line) IsVertical() bool {
	return l.B == 0
}

// IsHorizontal reports whether the line is parallel to the x axis.
func (l Line) IsHorizontal() bool {
	return l.A == 0
}

// Slope returns the slope, +Inf for a vertical line.
func (l Line) Slope() float64 {
	if l.IsVertical() {
		return math.Inf(1)
	}
	return -l.A / l.B
}

// PerpendicularSlope returns the slope of any line perpendicular to this
// one, +Inf when this line is horizontal.
func (l Line) PerpendicularSlope() float64 {
	if l.IsHorizontal() {
		return math.Inf(1)
	}
	return l.B / l.A
}

// Intercept returns the y value at x = 0, NaN for a vertical line.
func (l Line) Intercept() float64 {
	if l.IsVertical() {
		return math.NaN()
	}
	return -l.C / l.B
}

// SolveForY returns the y value at x. A vertical line has no single y
// and yields an Inf or NaN sentinel for callers to branch on.
func (l Line) SolveForY(x float64) float64 {
	if l.IsVertical() {
		if l.A*x+l.C == 0 {
			return math.Inf(1)
		}
		return math.NaN()
	}
	return (l.A*x + l.C) / -l.B
}

// Equal reports whether two lines describe the same points, comparing
// slope and intercept tolerantly. Vertical lines have NaN intercepts, so
// no two vertical lines compare equal; overlap of collinear vertical
// segments is recovered by the tolerance pass of adjacency detection
// instead of the exact pass.
func (l Line) Equal(other Line) bool {
	return Close(l.Slope(), other.Slope()) && Close(l.Intercept(), other.Intercept())
}

// ContainsPoint reports whether the line passes through p, within
// tolerance of the plane equation's residual.
func (l Line) ContainsPoint(p Point) bool {
	return Close(l.A*p.X+l.B*p.Y+l.C, 0)
}

// ContainsSegment reports whether the whole segment lies on the line.
func (l Line) ContainsSegment(s LineSegment) bool {
	return l.ContainsPoint(s.Start) && l.ContainsPoint(s.End)
}

// Intersect returns the point where two lines cross. The second result
// is false when the determinant is exactly zero, i.e. the lines are
// parallel or coincident; coincident lines are the caller's concern.
func (l Line) Intersect(other Line) (Point, bool) {
	det := l.A*other.B - other.A*l.B
	if det == 0 {
		return Point{}, false
	}
	nx := l.B*other.C - other.B*l.C
	ny := l.C*other.A - other.C*l.A
	return Point{X: nx / det, Y: ny / det}, true
}

// ClosestToPoint returns the orthogonal projection of p onto the line,
// constructed by intersecting with the perpendicular through p.
func (l Line) ClosestToPoint(p Point) Point {
	perpendicular := LineWithSlope(p, l.PerpendicularSlope())
	foot, ok := l.Intersect(perpendicular)
	if !ok {
		// A valid line always crosses its own perpendicular; reaching
		// this means A and B were both zero.
		panic(fmt.Sprintf("geom: no perpendicular foot on %+v", l))
	}
	return foot
}
