package plan

import (
	"fmt"
	"slices"

	"github.com/dhconnelly/rtreego"

	"github.com/chazu/joist/pkg/geom"
)

// The adjacency engine pairs every room against nearby walls, railings
// and later rooms in two passes: exact segment overlap first, then a
// distance fallback for edge pairs that digitization noise pulled just
// apart. Candidate pairs come from an r-tree over tolerance-inflated
// bounds, so far-apart entities are never compared. Hits are re-ordered
// by ID to keep record order deterministic and equal to build order.

// spatialEntry adapts one entity to the r-tree.
type spatialEntry struct {
	id   EntityID
	rect rtreego.Rect
}

func (s *spatialEntry) Bounds() rtreego.Rect { return s.rect }

// entityRect returns the polygon's bounding rectangle inflated by the
// close-edge tolerance on every side. The inflation covers the
// tolerance pass and keeps degenerate bounds positive.
func entityRect(p geom.Polygon) rtreego.Rect {
	b := p.Bound()
	rect, err := rtreego.NewRect(
		rtreego.Point{b.Min[0] - CloseEdgeTolerance, b.Min[1] - CloseEdgeTolerance},
		[]float64{
			b.Max[0] - b.Min[0] + 2*CloseEdgeTolerance,
			b.Max[1] - b.Min[1] + 2*CloseEdgeTolerance,
		},
	)
	if err != nil {
		panic(fmt.Sprintf("plan: entity rect: %v", err))
	}
	return rect
}

// candidateSet is the kind-split, ID-ordered result of one index query.
type candidateSet struct {
	walls    []EntityID
	railings []EntityID
	rooms    []EntityID
}

// roomsAfter returns the candidate rooms with IDs above the given one.
// Pairing each room only with later rooms visits every room pair once.
func (c candidateSet) roomsAfter(id EntityID) []EntityID {
	for i, rid := range c.rooms {
		if rid > id {
			return c.rooms[i:]
		}
	}
	return nil
}

func (f *Floor) buildCandidateIndex() *rtreego.Rtree {
	tree := rtreego.NewTree(2, 25, 50)
	for _, pool := range [][]EntityID{f.rooms, f.walls, f.railings} {
		for _, id := range pool {
			tree.Insert(&spatialEntry{id: id, rect: entityRect(f.entities[id].Polygon())})
		}
	}
	return tree
}

func (f *Floor) candidatesNear(tree *rtreego.Rtree, id EntityID) candidateSet {
	hits := tree.SearchIntersect(entityRect(f.entities[id].Polygon()))
	ids := make([]EntityID, 0, len(hits))
	for _, hit := range hits {
		entry := hit.(*spatialEntry)
		if entry.id != id {
			ids = append(ids, entry.id)
		}
	}
	slices.Sort(ids)

	var set candidateSet
	for _, hid := range ids {
		switch f.entities[hid].Kind() {
		case KindWall:
			set.walls = append(set.walls, hid)
		case KindRailing:
			set.railings = append(set.railings, hid)
		case KindRoom:
			set.rooms = append(set.rooms, hid)
		}
	}
	return set
}

// findAdjacencies runs the exact pass over every room, then the
// tolerance pass over rooms that still have loose edges.
func (f *Floor) findAdjacencies() {
	tree := f.buildCandidateIndex()
	f.exactPass(tree)
	f.closePass(tree)
}

// exactPass records every eligible edge pair whose intersection is a
// shared sub-segment. Edges that merely cross at a point do not count;
// adjacency means sharing a run of boundary.
func (f *Floor) exactPass(tree *rtreego.Rtree) {
	for _, roomID := range f.rooms {
		set := f.candidatesNear(tree, roomID)
		f.intersectEdges(roomID, set.walls)
		f.intersectEdges(roomID, set.railings)
		f.intersectEdges(roomID, set.roomsAfter(roomID))
	}
}

func (f *Floor) intersectEdges(selfID EntityID, others []EntityID) {
	self := f.entities[selfID]
	for _, selfEdge := range self.EligibleEdges() {
		for _, otherID := range others {
			for _, otherEdge := range f.entities[otherID].EligibleEdges() {
				result := selfEdge.Segment.Intersect(otherEdge.Segment)
				if result.Kind != geom.IntersectionSegment {
					continue
				}
				overlap := result.Segment
				f.record(selfID, otherID, selfEdge.Index, otherEdge.Index, &overlap)
				f.record(otherID, selfID, otherEdge.Index, selfEdge.Index, &overlap)
			}
		}
	}
}

// closePass retries rooms the exact pass left with uncovered eligible
// edges, matching by distance instead of intersection. Whether a room
// qualifies is decided once, on entry; edges another room covers
// mid-pass still get their own comparisons.
func (f *Floor) closePass(tree *rtreego.Rtree) {
	for _, roomID := range f.rooms {
		if len(LooseEdges(f.entities[roomID])) == 0 {
			continue
		}
		set := f.candidatesNear(tree, roomID)
		f.closeEdges(roomID, set.walls)
		f.closeEdges(roomID, set.railings)
		f.closeEdges(roomID, set.roomsAfter(roomID))
	}
}

func (f *Floor) closeEdges(selfID EntityID, others []EntityID) {
	self := f.entities[selfID]
	for _, selfEdge := range LooseEdges(self) {
		for _, otherID := range others {
			for _, otherEdge := range f.entities[otherID].EligibleEdges() {
				if !selfEdge.Segment.IsClose(otherEdge.Segment, CloseEdgeTolerance) {
					continue
				}
				f.record(selfID, otherID, selfEdge.Index, otherEdge.Index, nil)
				f.record(otherID, selfID, otherEdge.Index, selfEdge.Index, nil)
			}
		}
	}
}

// record appends one direction of an adjacency. A record landing on a
// wall about a room immediately re-checks the wall's openings against
// that room edge, in both passes.
func (f *Floor) record(ownerID, otherID EntityID, selfEdge, otherEdge int, overlap *geom.LineSegment) {
	owner := f.entities[ownerID]
	owner.Adjacencies().Add(otherID, AdjacencyRecord{
		SelfEdge:  selfEdge,
		OtherEdge: otherEdge,
		Overlap:   overlap,
	})

	if wall, ok := owner.(*Wall); ok {
		if room, isRoom := f.Room(otherID); isRoom {
			f.resolveOpenings(wall, room, selfEdge, otherEdge)
		}
	}
}

// resolveOpenings runs after a wall gained a room adjacency on face
// wallEdge. The opening edge with the same index lies along that face;
// when it runs close to the room's edge, the room is recorded on the
// opening's matching side (face 0 resolves side 0, face 2 side 1).
func (f *Floor) resolveOpenings(wall *Wall, room *Room, wallEdge, roomEdge int) {
	roomSegment := room.Polygon().Edges()[roomEdge]
	for _, openingID := range wall.openings {
		opening := f.MustOpening(openingID)
		edges := opening.Polygon().Edges()
		if len(edges) != 4 {
			continue
		}
		if !edges[wallEdge].IsClose(roomSegment, CloseEdgeTolerance) {
			continue
		}
		f.assignOpeningSide(opening, room, wallEdge/2)
	}
}

// assignOpeningSide records the room on the opening's side. Assignment
// is first-write-wins; a side that already resolved keeps its room.
func (f *Floor) assignOpeningSide(opening *Opening, room *Room, side int) {
	if opening.sides[side] != NoEntity {
		return
	}
	opening.sides[side] = room.id
	switch opening.kind {
	case KindDoor:
		room.doors = appendUnique(room.doors, opening.id)
	case KindWindow:
		room.windows = appendUnique(room.windows, opening.id)
	}
}

func appendUnique(ids []EntityID, id EntityID) []EntityID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

// resolveContainment assigns each fixture to the rooms holding its
// polygon vertices. Rooms already associated with the fixture are
// re-checked first; otherwise the first containing room in build order
// claims the vertex. Different vertices may land in different rooms.
func (f *Floor) resolveContainment() {
	for _, fixtureID := range f.fixtures {
		fixture := f.MustFixture(fixtureID)
		for _, vertex := range fixture.Polygon().Vertices() {
			f.placeFixtureVertex(fixture, vertex)
		}
	}
}

func (f *Floor) placeFixtureVertex(fixture *Fixture, vertex geom.Point) {
	for _, roomID := range fixture.roomOrder {
		if f.MustRoom(roomID).Polygon().ContainsPoint(vertex) {
			f.attachFixture(fixture, roomID, vertex)
			return
		}
	}
	for _, roomID := range f.rooms {
		if fixture.hasRoom(roomID) {
			continue
		}
		if f.MustRoom(roomID).Polygon().ContainsPoint(vertex) {
			f.attachFixture(fixture, roomID, vertex)
			break
		}
	}
}

func (f *Floor) attachFixture(fixture *Fixture, roomID EntityID, vertex geom.Point) {
	fixture.addRoom(roomID, vertex)
	room := f.MustRoom(roomID)
	room.fixtures = appendUnique(room.fixtures, fixture.id)
}
