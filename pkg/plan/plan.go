// Package plan models one floor of a drawing as an arena of spatial
// entities (rooms, walls, railings, door and window openings, fixtures,
// stair parts) and infers the relationships between them: which entities
// share edges, which rooms each door or window opens into, and which
// rooms contain each fixture. Raw polygon outlines are classified once
// into typed entities at build time and are immutable afterwards;
// analysis populates the relationship maps exactly once, append-only.
package plan

import (
	"fmt"

	"github.com/chazu/joist/pkg/geom"
)

// CloseEdgeTolerance is the distance, in drawing units, under which two
// edges that never touch exactly still count as adjacent. Floor-plan
// tracings routinely leave sub-unit gaps between a room and its wall.
const CloseEdgeTolerance = 1.0

// EntityID is a dense arena handle, assigned in build order and
// meaningful only within its own Floor.
type EntityID int

// NoEntity marks an unresolved entity reference.
const NoEntity EntityID = -1

// EntityKind discriminates the closed set of entity variants.
type EntityKind int

const (
	KindRoom EntityKind = iota
	KindWall
	KindRailing
	KindDoor
	KindWindow
	KindFixture
	KindStairFlight
	KindStairWinding
)

func (k EntityKind) String() string {
	switch k {
	case KindRoom:
		return "room"
	case KindWall:
		return "wall"
	case KindRailing:
		return "railing"
	case KindDoor:
		return "door"
	case KindWindow:
		return "window"
	case KindFixture:
		return "fixture"
	case KindStairFlight:
		return "stair flight"
	case KindStairWinding:
		return "stair winding"
	}
	return fmt.Sprintf("EntityKind(%d)", int(k))
}

// EdgeRef pairs a polygon edge with its index in the polygon's edge list.
type EdgeRef struct {
	Index   int
	Segment geom.LineSegment
}

// Entity is the capability surface shared by everything in a floor's
// arena. The variant set is closed; only this package constructs
// entities.
type Entity interface {
	ID() EntityID
	Kind() EntityKind
	// Tags returns the raw classification tags from ingestion, kept
	// for diagnostics. The kind and the typed accessors are
	// authoritative.
	Tags() []string
	Label() string
	Polygon() geom.Polygon
	// EligibleEdges returns the edges adjacency detection may use for
	// this entity, with their indices in the polygon's edge list.
	EligibleEdges() []EdgeRef
	Adjacencies() *AdjacencyList

	base() *object
}

// object carries the fields common to every entity variant.
type object struct {
	id          EntityID
	kind        EntityKind
	tags        []string
	polygon     geom.Polygon
	adjacencies AdjacencyList
}

func (o *object) ID() EntityID                { return o.id }
func (o *object) Kind() EntityKind            { return o.kind }
func (o *object) Tags() []string              { return o.tags }
func (o *object) Polygon() geom.Polygon       { return o.polygon }
func (o *object) Adjacencies() *AdjacencyList { return &o.adjacencies }
func (o *object) base() *object               { return o }

func (o *object) Label() string {
	return fmt.Sprintf("%s %d", o.kind, o.id)
}

// EligibleEdges defaults to every polygon edge; dividers narrow this to
// their two face edges.
func (o *object) EligibleEdges() []EdgeRef {
	edges := o.polygon.Edges()
	refs := make([]EdgeRef, len(edges))
	for i, e := range edges {
		refs[i] = EdgeRef{Index: i, Segment: e}
	}
	return refs
}

// LooseEdges returns e's eligible edges that appear in none of its
// adjacency records. After the exact pass these are the edges the
// tolerance pass re-examines.
func LooseEdges(e Entity) []EdgeRef {
	covered := make(map[int]bool)
	adj := e.Adjacencies()
	for _, id := range adj.IDs() {
		for _, rec := range adj.Records(id) {
			covered[rec.SelfEdge] = true
		}
	}
	var loose []EdgeRef
	for _, edge := range e.EligibleEdges() {
		if !covered[edge.Index] {
			loose = append(loose, edge)
		}
	}
	return loose
}
