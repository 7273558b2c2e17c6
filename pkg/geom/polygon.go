package geom

import (
	"math"

	"github.com/paulmach/orb"
)

// Polygon is a closed ring of vertices in drawing order. Its edges are
// computed once at construction and never change.
type Polygon struct {
	vertices []Point
	edges    []LineSegment
}

// NewPolygon builds a polygon from vertices in drawing order.
// Consecutive duplicate vertices are removed cyclically (the first
// vertex's predecessor is the last, so a ring closed on its opening
// vertex loses the repeat). One edge per consecutive vertex pair plus
// the closing edge; fewer than two distinct vertices leave no edges.
func NewPolygon(vertices []Point) Polygon {
	unique := dedupVertices(vertices)
	return Polygon{vertices: unique, edges: ringEdges(unique)}
}

// FromRing converts an orb ring into a Polygon.
func FromRing(ring orb.Ring) Polygon {
	points := make([]Point, len(ring))
	for i, pt := range ring {
		points[i] = Point{X: pt[0], Y: pt[1]}
	}
	return NewPolygon(points)
}

func dedupVertices(vertices []Point) []Point {
	if len(vertices) == 0 {
		return nil
	}
	unique := make([]Point, 0, len(vertices))
	previous := vertices[len(vertices)-1]
	for _, v := range vertices {
		if v != previous {
			unique = append(unique, v)
			previous = v
		}
	}
	return unique
}

func ringEdges(vertices []Point) []LineSegment {
	if len(vertices) < 2 {
		return nil
	}
	edges := make([]LineSegment, 0, len(vertices))
	for i := 0; i+1 < len(vertices); i++ {
		edges = append(edges, LineSegment{Start: vertices[i], End: vertices[i+1]})
	}
	edges = append(edges, LineSegment{Start: vertices[len(vertices)-1], End: vertices[0]})
	return edges
}

// Vertices returns the deduplicated vertex ring.
func (p Polygon) Vertices() []Point {
	return p.vertices
}

// Edges returns the polygon's edges.
func (p Polygon) Edges() []LineSegment {
	return p.edges
}

// Ring returns the vertices as an orb ring.
func (p Polygon) Ring() orb.Ring {
	ring := make(orb.Ring, len(p.vertices))
	for i, v := range p.vertices {
		ring[i] = orb.Point{v.X, v.Y}
	}
	return ring
}

// Bound returns the axis-aligned bounding box of the vertices.
func (p Polygon) Bound() orb.Bound {
	var b orb.Bound
	for i, v := range p.vertices {
		pt := orb.Point{v.X, v.Y}
		if i == 0 {
			b = orb.Bound{Min: pt, Max: pt}
			continue
		}
		b = b.Extend(pt)
	}
	return b
}

// Area returns the enclosed area via the shoelace formula.
func (p Polygon) Area() float64 {
	var sum float64
	for _, e := range p.edges {
		sum += (e.Start.X + e.End.X) * (e.Start.Y - e.End.Y)
	}
	return math.Abs(sum / 2)
}

// Perimeter returns the total edge length.
func (p Polygon) Perimeter() float64 {
	var total float64
	for _, e := range p.edges {
		total += e.Length()
	}
	return total
}

// Compactness returns the isoperimetric quotient 4πA/P², a scale-free
// shape measure that is 1 for a circle and π/4 for a square. A polygon
// with zero perimeter reports 0.
func (p Polygon) Compactness() float64 {
	perimeter := p.Perimeter()
	if perimeter == 0 {
		return 0
	}
	return 4 * math.Pi * p.Area() / (perimeter * perimeter)
}

// LongestDiagonal returns the largest distance between any two
// vertices, 0 for fewer than two.
func (p Polygon) LongestDiagonal() float64 {
	var longest float64
	for i, a := range p.vertices {
		for _, b := range p.vertices[i+1:] {
			if d := a.DistanceTo(b); d > longest {
				longest = d
			}
		}
	}
	return longest
}

// Centroid returns the mean of the vertices, which is not the area
// centroid. An empty polygon returns the origin.
func (p Polygon) Centroid() Point {
	if len(p.vertices) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, v := range p.vertices {
		sx += v.X
		sy += v.Y
	}
	n := float64(len(p.vertices))
	return Point{X: sx / n, Y: sy / n}
}

// ContainsPoint reports whether pt lies inside the polygon, by casting
// a ray upward from pt and counting edge crossings. An edge crosses
// when its carrier line has a defined y at pt.X at or above pt.Y and
// the hit sits at edge position [0, 1); the half-open interval keeps
// the shared vertex of consecutive edges from counting twice.
func (p Polygon) ContainsPoint(pt Point) bool {
	crossings := 0
	for _, edge := range p.edges {
		y := edge.Line().SolveForY(pt.X)
		if math.IsNaN(y) || math.IsInf(y, 0) || y < pt.Y {
			continue
		}
		if pos, ok := edge.Position(Point{X: pt.X, Y: y}); ok && pos >= 0 && pos < 1 {
			crossings++
		}
	}
	return crossings%2 == 1
}
