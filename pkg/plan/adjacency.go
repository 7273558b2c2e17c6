package plan

import "github.com/chazu/joist/pkg/geom"

// AdjacencyRecord describes one touching edge pair between two entities.
// SelfEdge indexes the owning entity's polygon edges, OtherEdge the
// neighbor's. Overlap is the shared sub-segment found by the exact pass;
// records added by the tolerance pass carry nil.
type AdjacencyRecord struct {
	SelfEdge  int
	OtherEdge int
	Overlap   *geom.LineSegment
}

// AdjacencyList is an insertion-ordered multimap from neighbor to the
// records shared with it. A pair of entities can hold several records
// when several of their edge pairs touch. The zero value is ready to
// use.
type AdjacencyList struct {
	order   []EntityID
	records map[EntityID][]AdjacencyRecord
}

// Add appends a record for the given neighbor.
func (l *AdjacencyList) Add(id EntityID, rec AdjacencyRecord) {
	if l.records == nil {
		l.records = make(map[EntityID][]AdjacencyRecord)
	}
	if _, seen := l.records[id]; !seen {
		l.order = append(l.order, id)
	}
	l.records[id] = append(l.records[id], rec)
}

// IDs returns the neighbors in first-touch order.
func (l *AdjacencyList) IDs() []EntityID {
	return l.order
}

// Count returns the number of distinct neighbors.
func (l *AdjacencyList) Count() int {
	return len(l.order)
}

// Has reports whether any record involves the given neighbor.
func (l *AdjacencyList) Has(id EntityID) bool {
	_, ok := l.records[id]
	return ok
}

// Records returns the records shared with one neighbor, oldest first.
func (l *AdjacencyList) Records(id EntityID) []AdjacencyRecord {
	return l.records[id]
}

// First returns the earliest record shared with the neighbor.
func (l *AdjacencyList) First(id EntityID) (AdjacencyRecord, bool) {
	recs := l.records[id]
	if len(recs) == 0 {
		return AdjacencyRecord{}, false
	}
	return recs[0], true
}
