package plan

// divider is the shared shape of walls and railings: a nominally
// four-sided polygon whose index-0 and index-2 edges are the two long
// faces. Only the faces can meet a room; the end caps at indices 1 and
// 3 never join adjacency detection.
type divider struct {
	object
}

// EligibleEdges returns the two face edges. A divider whose polygon
// does not have exactly four edges is degenerate and exposes none.
func (d *divider) EligibleEdges() []EdgeRef {
	edges := d.polygon.Edges()
	if len(edges) != 4 {
		return nil
	}
	return []EdgeRef{
		{Index: 0, Segment: edges[0]},
		{Index: 2, Segment: edges[2]},
	}
}

// Railing is a divider that does not reach the ceiling and carries no
// openings: a balustrade, counter edge or half wall.
type Railing struct {
	divider
}
