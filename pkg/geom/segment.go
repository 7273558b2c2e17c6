package geom

import (
	"fmt"
	"math"
)

// LineSegment is the finite segment between Start and End.
type LineSegment struct {
	Start Point
	End   Point
}

// XDomain returns the interval of x values the segment spans.
func (s LineSegment) XDomain() Domain {
	return Domain{Start: s.Start.X, End: s.End.X}
}

// YDomain returns the interval of y values the segment spans.
func (s LineSegment) YDomain() Domain {
	return Domain{Start: s.Start.Y, End: s.End.Y}
}

// Length returns the segment's length.
func (s LineSegment) Length() float64 {
	return s.Start.DistanceTo(s.End)
}

// Midpoint returns the point halfway between the endpoints.
func (s LineSegment) Midpoint() Point {
	return Point{X: (s.Start.X + s.End.X) / 2, Y: (s.Start.Y + s.End.Y) / 2}
}

// Line returns the segment's carrier line, computed on demand. A
// zero-length segment has no carrier line and panics; polygon
// construction never produces one.
func (s LineSegment) Line() Line {
	line, err := LineThroughPoints(s.Start, s.End)
	if err != nil {
		panic(err)
	}
	return line
}

// Reverse returns the segment with its endpoints swapped.
func (s LineSegment) Reverse() LineSegment {
	return LineSegment{Start: s.End, End: s.Start}
}

func (s LineSegment) String() string {
	return fmt.Sprintf("%s -> %s", s.Start, s.End)
}

// Position returns p's fractional position along the segment: 0 at
// Start, 1 at End. It projects p onto both axis domains; a degenerate
// axis (infinite position) defers to the other axis, and disagreeing
// finite positions mean p is off the carrier line (ok = false).
func (s LineSegment) Position(p Point) (float64, bool) {
	px := s.XDomain().Position(p.X)
	py := s.YDomain().Position(p.Y)

	switch {
	case math.IsInf(px, 0):
		return py, true
	case math.IsInf(py, 0):
		return px, true
	case Close(px, py):
		return px, true
	}
	return 0, false
}

// inRange reports whether p's coordinates fall inside both axis domains.
func (s LineSegment) inRange(p Point) bool {
	return s.XDomain().Contains(p.X) && s.YDomain().Contains(p.Y)
}

// Contains reports whether p lies on the segment: on the carrier line
// and inside both axis domains, all within tolerance.
func (s LineSegment) Contains(p Point) bool {
	return s.Line().ContainsPoint(p) && s.inRange(p)
}

// ContainsSegment reports whether other lies entirely on this segment.
func (s LineSegment) ContainsSegment(other LineSegment) bool {
	return s.Line().ContainsSegment(other) && s.inRange(other.Start) && s.inRange(other.End)
}

// ClosestToPoint returns the point on the segment nearest to p: the
// carrier-line projection clamped to the nearer endpoint.
func (s LineSegment) ClosestToPoint(p Point) Point {
	foot := s.Line().ClosestToPoint(p)
	pos, ok := s.Position(foot)
	if !ok {
		panic(fmt.Sprintf("geom: projection of %s onto %s left the carrier line", p, s))
	}
	switch {
	case pos < 0:
		return s.Start
	case pos > 1:
		return s.End
	}
	return foot
}

// DistanceToPoint returns the distance from p to the nearest point on
// the segment.
func (s LineSegment) DistanceToPoint(p Point) float64 {
	return s.ClosestToPoint(p).DistanceTo(p)
}

// IntersectionKind discriminates the result of segment intersection.
type IntersectionKind int

const (
	// IntersectionNone means the segments do not meet.
	IntersectionNone IntersectionKind = iota
	// IntersectionPoint means the segments cross at a single point.
	IntersectionPoint
	// IntersectionSegment means the segments overlap along a shared
	// sub-segment.
	IntersectionSegment
)

func (k IntersectionKind) String() string {
	switch k {
	case IntersectionNone:
		return "none"
	case IntersectionPoint:
		return "point"
	case IntersectionSegment:
		return "segment"
	}
	return fmt.Sprintf("IntersectionKind(%d)", int(k))
}

// Intersection is the result of intersecting two segments. Point is
// meaningful for IntersectionPoint results, Segment for
// IntersectionSegment.
type Intersection struct {
	Kind    IntersectionKind
	Point   Point
	Segment LineSegment
}

// Intersect returns the intersection of two segments. Segments on
// tolerantly equal carrier lines overlap in a sub-segment bounded by the
// first two endpoints found lying on the opposite segment; anything else
// is resolved through the carrier-line crossing, accepted only when it
// falls within the other segment's range.
func (s LineSegment) Intersect(other LineSegment) Intersection {
	if s.Line().Equal(other.Line()) {
		var endpoints []Point
		pairs := []struct {
			edge  LineSegment
			point Point
		}{
			{s, other.Start},
			{s, other.End},
			{other, s.Start},
			{other, s.End},
		}

		for _, pair := range pairs {
			if pair.edge.Contains(pair.point) {
				endpoints = append(endpoints, pair.point)
				if len(endpoints) == 2 {
					return Intersection{
						Kind:    IntersectionSegment,
						Segment: LineSegment{Start: endpoints[0], End: endpoints[1]},
					}
				}
			}
		}
	} else {
		if p, ok := s.Line().Intersect(other.Line()); ok && other.inRange(p) {
			return Intersection{Kind: IntersectionPoint, Point: p}
		}
	}

	return Intersection{Kind: IntersectionNone}
}

// IsClose reports whether the segments nearly touch: at least two of the
// four endpoint-to-opposite-segment distances fall under tol. One
// endpoint merely brushing the other segment is not enough; segments
// meeting at a corner do qualify, since the corner counts once from each
// direction.
func (s LineSegment) IsClose(other LineSegment, tol float64) bool {
	pairs := []struct {
		edge  LineSegment
		point Point
	}{
		{s, other.Start},
		{s, other.End},
		{other, s.Start},
		{other, s.End},
	}

	closePoints := 0
	for _, pair := range pairs {
		if pair.edge.DistanceToPoint(pair.point) < tol {
			closePoints++
			if closePoints == 2 {
				return true
			}
		}
	}
	return false
}
