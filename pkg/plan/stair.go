package plan

// StairPart is a single flight or winding segment of a staircase. Parts
// carry polygons like any entity but never join adjacency detection.
type StairPart struct {
	object
}

// Stair groups the parts of one staircase. The composite itself is not
// an arena entity; its parts are.
type Stair struct {
	Flights  []EntityID
	Windings []EntityID
}

// Parts returns every part ID, flights first.
func (s Stair) Parts() []EntityID {
	parts := make([]EntityID, 0, len(s.Flights)+len(s.Windings))
	parts = append(parts, s.Flights...)
	parts = append(parts, s.Windings...)
	return parts
}
